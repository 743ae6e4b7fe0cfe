/*
Package color converts between hex strings, RGB triples and OKLCH strings, applies
opacity to colour strings and finds the nearest entry of a palette.

RGB channels are uint8, so out-of-range components cannot be represented. Hex parsing
and formatting go through go-colorful and round-trip losslessly:

	c, _ := color.HexToRGB("#1e90ff") // RGB{30, 144, 255}
	color.RGBToHex(c)                 // "#1e90ff"
*/
package color
