package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/pagefold/pagefold/types"
)

// Image processing limits. Anything smaller than the minimum is treated as
// decoration; anything larger than the maximum is downscaled for print.
const (
	minImageWidth  = 150
	minImageHeight = 150
	maxImageWidth  = 1200
	maxImageHeight = 1600
	jpegQuality    = 85
	maxImageBytes  = 20 << 20
)

// skipURLPatterns mark tracking pixels, icons, avatars, and other
// non-content images by URL.
var skipURLPatterns = []string{
	"pixel", "tracking", "beacon", "favicon", ".ico",
	"avatar", "profile", "logo", "icon", "button",
	"emoji", "badge", "sprite", "/static/", "widget",
	"placeholder", "spacer", "blank", "transparent",
}

// skipAttrPatterns mark non-content images by class or id.
var skipAttrPatterns = []string{"avatar", "logo", "icon", "profile"}

// collectImages finds, downloads, and processes the content images in the
// article area, in document order. Failures are logged and the image is
// skipped; downstream stages see a shorter list, never an error.
func (e *articleExtractor) collectImages(ctx context.Context, area *goquery.Selection, base *url.URL) []types.Image {
	var images []types.Image
	seen := make(map[string]bool)

	area.Find("img").Each(func(_ int, img *goquery.Selection) {
		if e.opts.maxImages > 0 && len(images) >= e.opts.maxImages {
			return
		}

		src := imageSource(img)
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		resolved, err := base.Parse(src)
		if err != nil {
			return
		}
		full := resolved.String()
		if seen[full] {
			return
		}
		seen[full] = true

		if isNonContentImage(full, img) {
			return
		}

		processed, err := e.fetchImage(ctx, full)
		if err != nil {
			e.opts.logger.Warn("skipping image", "url", full, "error", err)
			return
		}
		processed.AltText = strings.TrimSpace(img.AttrOr("alt", ""))
		processed.Caption = nearestCaption(img)
		processed.Position = len(images)
		images = append(images, *processed)
	})

	return images
}

// imageSource resolves the image URL from src and the common lazy-loading
// attributes, falling back to the first srcset entry.
func imageSource(img *goquery.Selection) string {
	for _, key := range []string{"src", "data-src", "data-lazy-src"} {
		if src := strings.TrimSpace(img.AttrOr(key, "")); src != "" {
			return src
		}
	}
	for _, key := range []string{"srcset", "data-srcset"} {
		if srcset := img.AttrOr(key, ""); srcset != "" {
			first := strings.TrimSpace(strings.Split(srcset, ",")[0])
			if fields := strings.Fields(first); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return ""
}

// nearestCaption returns the figcaption text when the image sits inside a
// figure.
func nearestCaption(img *goquery.Selection) string {
	figure := img.Closest("figure")
	if figure.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(figure.Find("figcaption").First().Text())
}

func isNonContentImage(fullURL string, img *goquery.Selection) bool {
	lower := strings.ToLower(fullURL)
	for _, pattern := range skipURLPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	for _, attr := range []string{"class", "id"} {
		value := strings.ToLower(img.AttrOr(attr, ""))
		for _, pattern := range skipAttrPatterns {
			if strings.Contains(value, pattern) {
				return true
			}
		}
	}

	// Dimension hints below 100px signal decoration, not content.
	for _, attr := range []string{"width", "height"} {
		if value, err := strconv.Atoi(img.AttrOr(attr, "")); err == nil && value < 100 {
			return true
		}
	}
	return false
}

// fetchImage downloads and processes one image: decode, flatten any alpha
// onto white, downscale to the print limits, and re-encode as a JPEG data
// URI. Alt text, caption, and position are filled in by the caller.
func (e *articleExtractor) fetchImage(ctx context.Context, imageURL string) (*types.Image, error) {
	resp, err := e.get(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() < minImageWidth || bounds.Dy() < minImageHeight {
		return nil, fmt.Errorf("image too small (%dx%d)", bounds.Dx(), bounds.Dy())
	}

	flattened := flattenOntoWhite(src)
	scaled := scaleToFit(flattened, maxImageWidth, maxImageHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	final := scaled.Bounds()
	return &types.Image{
		OriginalURL: imageURL,
		DataURI:     "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:       final.Dx(),
		Height:      final.Dy(),
	}, nil
}

// flattenOntoWhite composites the image over a white background so
// transparency survives JPEG encoding.
func flattenOntoWhite(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, stddraw.Src)
	stddraw.Draw(dst, dst.Bounds(), src, bounds.Min, stddraw.Over)
	return dst
}

// scaleToFit downscales the image to fit within maxW x maxH, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func scaleToFit(src *image.RGBA, maxW, maxH int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	targetW := int(float64(w) * ratio)
	targetH := int(float64(h) * ratio)
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
