/*
Package render rasterizes layout plans into PNG bytes.

The Renderer interface keeps the layout engine testable without pixels;
GG is the production implementation on top of fogleman/gg. Text uses the
embedded Go fonts (regular, bold, italic), parsed once at startup and
derived into faces per caption size. Caption lines are measured as a
single run and centered, so segment colors can differ without breaking
the centering.
*/
package render
