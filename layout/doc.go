/*
Package layout is the progress-grid layout engine.

Build is the single entry point. Given a canvas size, a computed year
progress, and a Variant, it produces a Plan: every dot's position, size,
and color token, plus positioned caption lines. The Plan is plain data;
rendering it to pixels is the render package's job.

# Variants

Every wallpaper style is a Variant value (palette, grid shape, scale
constants, caption template, optional pinned timezone). There is one
layout code path; adding a style means adding a value to Variants, not
code.

# Geometry

The flat grid packs the year's days row-major into Columns x Rows, with
days beyond that spilling into one partial left-packed row. Spacing is
derived from the drawable area between the top padding (clock space) and
the bottom caption band, tightened by the variant's Scale; the dot
diameter is DotFrac of the tighter spacing axis. The grid is always
centered horizontally.

The month-grid variant instead partitions the days into twelve labeled
7x5 blocks arranged 3 wide by 4 tall.
*/
package layout
