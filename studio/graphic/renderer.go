package graphic

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/askdrjosh/postpilot/domains/content"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

const (
	canvasSize   = 1024
	barHeight    = 60
	titleSize    = 60
	subtitleSize = 32
	lineSpacing  = 70
	subtitle     = "Beyond the lab results"
)

// Renderer draws branded text graphics locally, without any external API.
type Renderer struct {
	primary    color.NRGBA
	secondary  color.NRGBA
	background color.NRGBA
	textColor  color.NRGBA

	outputDir string
	logoPath  string

	titleFace    font.Face
	subtitleFace font.Face
}

func NewRenderer(primaryHex, secondaryHex, backgroundHex, outputDir, logoPath string) (*Renderer, error) {
	primary, err := ParseHexColor(primaryHex)
	if err != nil {
		return nil, fmt.Errorf("primary color: %w", err)
	}
	secondary, err := ParseHexColor(secondaryHex)
	if err != nil {
		return nil, fmt.Errorf("secondary color: %w", err)
	}
	background, err := ParseHexColor(backgroundHex)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}

	titleFace, err := newFace(gobold.TTF, titleSize)
	if err != nil {
		return nil, err
	}
	subtitleFace, err := newFace(goregular.TTF, subtitleSize)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		primary:      primary,
		secondary:    secondary,
		background:   background,
		textColor:    color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		outputDir:    outputDir,
		logoPath:     logoPath,
		titleFace:    titleFace,
		subtitleFace: subtitleFace,
	}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// Render draws the branded graphic for the topic and persists it under the
// output directory with a unique file name. On any failure it returns a
// placeholder reference instead of an error.
func (r *Renderer) Render(topic string, style content.Style) string {
	path, err := r.render(topic, style)
	if err != nil {
		logrus.Warnf("[GRAPHIC] render failed, using placeholder: %v", err)
		safe := topic
		if len(safe) > 50 {
			safe = safe[:50]
		}
		return fmt.Sprintf("https://via.placeholder.com/%dx%d.png?text=%s", canvasSize, canvasSize, url.QueryEscape(safe))
	}
	return path
}

func (r *Renderer) render(topic string, style content.Style) (string, error) {
	img := imaging.New(canvasSize, canvasSize, r.background)

	r.fillRect(img, 0, 0, canvasSize, barHeight, r.primary)
	r.fillRect(img, 0, canvasSize-barHeight, canvasSize, canvasSize, r.primary)

	switch style {
	case content.StyleEducational:
		r.drawCircles(img)
	case content.StyleInspirational:
		r.drawGradient(img)
	case content.StyleFunny:
		r.drawStripes(img)
	}

	lines := r.wrapTitle(topic)
	y := canvasSize/2 - len(lines)*lineSpacing/2
	for _, line := range lines {
		width := font.MeasureString(r.titleFace, line).Ceil()
		x := (canvasSize - width) / 2
		r.drawText(img, line, x+2, y+2, r.titleFace, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x40})
		r.drawText(img, line, x, y, r.titleFace, r.textColor)
		y += lineSpacing
	}

	subWidth := font.MeasureString(r.subtitleFace, subtitle).Ceil()
	r.drawText(img, subtitle, (canvasSize-subWidth)/2, y+30, r.subtitleFace, r.primary)

	r.stampLogo(img)

	if err := utils.CreateFolder(r.outputDir); err != nil {
		return "", err
	}
	path := filepath.Join(r.outputDir, fmt.Sprintf("graphic-%s.png", uuid.NewString()))
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save graphic: %w", err)
	}
	return path, nil
}

func (r *Renderer) fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawCircles scatters brand-colored circles over the middle band.
func (r *Renderer) drawCircles(img *image.NRGBA) {
	for i := 0; i < 5; i++ {
		radius := 10 + rand.IntN(30)
		cx := radius + rand.IntN(canvasSize-2*radius)
		cy := 120 + radius + rand.IntN(canvasSize-300-2*radius)
		c := r.secondary
		if i%2 != 0 {
			c = r.primary
		}
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy <= radius*radius {
					img.SetNRGBA(cx+dx, cy+dy, c)
				}
			}
		}
	}
}

// drawGradient blends primary into secondary top to bottom across the middle
// band, leaving the bars intact.
func (r *Renderer) drawGradient(img *image.NRGBA) {
	for y := barHeight; y < canvasSize-barHeight; y++ {
		t := float64(y) / float64(canvasSize)
		c := color.NRGBA{
			R: lerp(r.primary.R, r.secondary.R, t),
			G: lerp(r.primary.G, r.secondary.G, t),
			B: lerp(r.primary.B, r.secondary.B, t),
			A: 0xff,
		}
		blended := blend(r.background, c, 0.2)
		for x := 0; x < canvasSize; x++ {
			img.SetNRGBA(x, y, blended)
		}
	}
}

// drawStripes lays diagonal secondary-colored stripes across the canvas.
func (r *Renderer) drawStripes(img *image.NRGBA) {
	const stripeWidth = 40
	for y := barHeight; y < canvasSize-barHeight; y++ {
		for x := 0; x < canvasSize; x++ {
			if ((x-y)%(stripeWidth*3)+stripeWidth*3)%(stripeWidth*3) < stripeWidth {
				img.SetNRGBA(x, y, r.secondary)
			}
		}
	}
}

func (r *Renderer) drawText(img *image.NRGBA, text string, x, y int, face font.Face, c color.NRGBA) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

// wrapTitle breaks the topic into lines that fit the canvas with a margin.
func (r *Renderer) wrapTitle(topic string) []string {
	const maxWidth = canvasSize - 100
	var lines []string
	var current []string
	for _, word := range strings.Fields(topic) {
		candidate := strings.Join(append(current, word), " ")
		if font.MeasureString(r.titleFace, candidate).Ceil() < maxWidth || len(current) == 0 {
			current = append(current, word)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// stampLogo pastes the brand logo bottom-right, or draws a small circular
// mark when no logo file is present.
func (r *Renderer) stampLogo(img *image.NRGBA) {
	const (
		logoSize = 60
		padding  = 30
	)
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			logo, err := imaging.Open(r.logoPath)
			if err == nil {
				resized := imaging.Resize(logo, logoSize*2, logoSize*2, imaging.Lanczos)
				pasted := imaging.Paste(img, resized, image.Pt(canvasSize-logoSize*2-padding, canvasSize-logoSize*2-padding))
				copy(img.Pix, pasted.Pix)
				return
			}
			logrus.Warnf("[GRAPHIC] failed to open logo %s: %v", r.logoPath, err)
		}
	}

	cx := canvasSize - logoSize/2 - padding
	cy := canvasSize - logoSize/2 - padding
	radius := logoSize / 2
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(cx+dx, cy+dy, r.primary)
			}
		}
	}
	markWidth := font.MeasureString(r.subtitleFace, "dr").Ceil()
	r.drawText(img, "dr", cx-markWidth/2, cy+subtitleSize/3, r.subtitleFace, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

// ParseHexColor parses #RGB and #RRGGBB notations.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var c color.NRGBA
	c.A = 0xff
	switch len(s) {
	case 3:
		_, err := fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("invalid hex color %q", s)
		}
		c.R *= 17
		c.G *= 17
		c.B *= 17
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("invalid hex color %q", s)
		}
	default:
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

func blend(base, over color.NRGBA, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: lerp(base.R, over.R, alpha),
		G: lerp(base.G, over.G, alpha),
		B: lerp(base.B, over.B, alpha),
		A: 0xff,
	}
}
