package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubesim"
)

// Official face colors, white on top and green in front.
var faceStyles = map[cubesim.Face]lipgloss.Style{
	cubesim.FaceU: lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")),
	cubesim.FaceR: lipgloss.NewStyle().Background(lipgloss.Color("#B71234")),
	cubesim.FaceF: lipgloss.NewStyle().Background(lipgloss.Color("#009B48")),
	cubesim.FaceD: lipgloss.NewStyle().Background(lipgloss.Color("#FFD500")),
	cubesim.FaceL: lipgloss.NewStyle().Background(lipgloss.Color("#FF5800")),
	cubesim.FaceB: lipgloss.NewStyle().Background(lipgloss.Color("#0046AD")),
}

// renderNet renders a facelet model as a colored flat net:
//
//	 U
//	LFRB
//	 D
//
// Each facelet is a two-character colored cell. With color disabled it falls
// back to the model's plain-letter layout.
func renderNet(model cubesim.FaceletModel, size int, colored bool) string {
	if !colored {
		return model.String()
	}

	perFace := size * size
	block := func(f cubesim.Face) cubesim.FaceletModel {
		for i, ordered := range cubesim.OrderedFaces {
			if ordered == f {
				return model[i*perFace : (i+1)*perFace]
			}
		}
		return nil
	}
	cell := func(f cubesim.Face) string {
		if style, ok := faceStyles[f]; ok {
			return style.Render("  ")
		}
		return "  "
	}

	var b strings.Builder
	indent := strings.Repeat("  ", size)
	writeRow := func(faces cubesim.FaceletModel, row int) {
		for col := 0; col < size; col++ {
			b.WriteString(cell(faces[row*size+col]))
		}
	}

	for row := 0; row < size; row++ {
		b.WriteString(indent)
		writeRow(block(cubesim.FaceU), row)
		b.WriteByte('\n')
	}
	for row := 0; row < size; row++ {
		for _, f := range [4]cubesim.Face{cubesim.FaceL, cubesim.FaceF, cubesim.FaceR, cubesim.FaceB} {
			writeRow(block(f), row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < size; row++ {
		b.WriteString(indent)
		writeRow(block(cubesim.FaceD), row)
		b.WriteByte('\n')
	}
	return b.String()
}
