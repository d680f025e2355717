// Package imaging conditions a screen capture before it is handed to the OCR
// engine.
//
// Screen text differs from the scanned pages Tesseract is trained on: glyphs
// are small, anti-aliased, and often light on a dark background. Prepare
// applies a short, fixed sequence of corrections to bring a capture closer to
// what the engine expects.
//
// # Steps
//
//  1. Upscale: captures shorter than Options.MinHeight are enlarged by
//     Options.Scale with a Lanczos filter.
//  2. Grayscale conversion.
//  3. Auto-invert: when the mean CIE L* lightness is below 50 the image is
//     inverted, turning light-on-dark text into dark-on-light.
//  4. Threshold (optional): pixels are binarized at Options.Threshold.
//
// # Coordinate System
//
// No step crops or shifts the image, so (0,0) stays the top-left pixel of the
// selected region. Upscaling changes the pixel grid uniformly.
//
// # Files
//
// Prepare reads and writes files because the OCR engine takes a path. The
// output should be placed in the capture's scoped directory so it is removed
// together with the screenshot.
package imaging
