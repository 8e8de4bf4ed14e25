// Package plugins declares the Bootstrap 3 content blocks (buttons, rows,
// columns, images, carousels), their fields and the CSS classes each block
// renders with.
package plugins
