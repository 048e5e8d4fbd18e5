package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

const badgeDir = "statics/badges"

type ChildBadge struct {
	ChildID   int
	FullName  string
	Classroom string
}

// GenerateBadgePNG renders the child's QR code as a PNG on disk and
// returns its path. The payload is the child id, which the check-in
// scanner posts back.
func GenerateBadgePNG(badge ChildBadge) (string, error) {
	if _, err := os.Stat(badgeDir); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(badgeDir, os.ModePerm); err != nil {
			return "", err
		}
	}

	raw, err := qrcode.Encode(fmt.Sprintf("child:%d", badge.ChildID), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encoding qr code: %w", err)
	}

	src, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decoding qr code: %w", err)
	}

	// Scale up so the printed badge stays scannable.
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	path := filepath.Join(badgeDir, fmt.Sprintf("child_%d.png", badge.ChildID))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err = png.Encode(out, dst); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateBadgeSheet lays the badges out on an A4 PDF, one QR code per
// cell with the child's name and classroom underneath, and returns the
// file path.
func GenerateBadgeSheet(badges []ChildBadge) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)

	const (
		cellW   = 60.0
		cellH   = 75.0
		qrSize  = 50.0
		perRow  = 3
		marginX = 15.0
		marginY = 15.0
	)

	for i, badge := range badges {
		if i%(perRow*3) == 0 {
			pdf.AddPage()
		}
		pos := i % (perRow * 3)
		x := marginX + float64(pos%perRow)*cellW
		y := marginY + float64(pos/perRow)*cellH

		pngPath, err := GenerateBadgePNG(badge)
		if err != nil {
			return "", err
		}

		pdf.ImageOptions(pngPath, x+(cellW-qrSize)/2, y, qrSize, qrSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetXY(x, y+qrSize+2)
		pdf.MultiCell(cellW, 5, fmt.Sprintf("%s\n%s", badge.FullName, badge.Classroom), "", "C", false)
	}

	path := filepath.Join(badgeDir, "badges.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing badge sheet: %w", err)
	}
	return path, nil
}
