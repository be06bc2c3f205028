// Package vision implements the EVA image-processing engine. Images are
// numeric.Dense matrices of intensity values; there is no color model.
//
// 🚀 What is the vision engine?
//
//	Everything behind the `vision_*` request family:
//	  • GaussianBlur — separable Gaussian kernel sized from sigma
//	  • EdgeDetection — Sobel gradient magnitude, or Canny with
//	    non-maximum suppression and hysteresis thresholding
//	  • Resize — bilinear interpolation to a positive target shape
//	  • ExtractFeatures — gradient-orientation histogram descriptor
//	  • DetectCorners — Harris response with fixed, documented constants
//	  • Morphology — erode / dilate / open / close on a 3×3 element
//	  • Similarity — normalized cross-correlation mapped into [0, 1]
//
// ✨ Conventions:
//
//   - Borders use clamp-to-edge sampling everywhere a kernel overhangs
//     the image.
//   - Every operation is deterministic: the same image and parameters
//     always produce the same output; nothing here draws randomness.
//   - Unknown method/operation selectors return ErrInvalidParameter;
//     combining images of different shapes returns ErrDimensionMismatch.
package vision
