package analysis

// Palette is cycled by colour index when a product lists more nutrients than
// there are colours.
var Palette = []string{
	"#2E7D32", // leaf green
	"#F9A825", // harvest gold
	"#1565C0", // deep blue
	"#C62828", // brick red
	"#6A1B9A", // plum
	"#00838F", // teal
	"#EF6C00", // orange
	"#558B2F", // olive
	"#4E342E", // soil brown
	"#90A4AE", // slate
}
