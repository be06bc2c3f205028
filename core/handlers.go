// Package core: per-engine request handlers. Each handler decodes the
// payload via codec, runs the engine routine and serializes one of the
// results.go shapes. Options are parsed here with documented defaults;
// handlers return errors unwrapped so ProcessRequest keeps the engine's
// own message in the response.
package core

import (
	"math"

	"github.com/phantompay1/EVA/codec"
	"github.com/phantompay1/EVA/optimize"
	"github.com/phantompay1/EVA/signal"
	"github.com/phantompay1/EVA/vision"
)

// marshalResult serializes a result shape into the response Result
// string.
func marshalResult(v any) (string, error) {
	return codec.Marshal(v)
}

func (d *Dispatcher) execMatrix(m Method, req ProcessingRequest) (string, error) {
	op := req.Method

	switch m {
	case MatrixMultiply, MatrixParallelMultiply:
		a, b, err := codec.ParseMatrixPair(req.Data)
		if err != nil {
			return "", err
		}
		mul := d.matrix.Multiply
		if m == MatrixParallelMultiply {
			mul = d.matrix.ParallelMultiply
		}
		out, err := mul(a, b)
		if err != nil {
			return "", err
		}
		return marshalResult(matrixResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case MatrixTranspose:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		out, err := d.matrix.Transpose(in)
		if err != nil {
			return "", err
		}
		return marshalResult(matrixResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case MatrixInverse:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		out, err := d.matrix.Inverse(in)
		if err != nil {
			return "", err
		}
		return marshalResult(matrixResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case MatrixEigenvalues:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		vals, err := d.matrix.Eigenvalues(in)
		if err != nil {
			return "", err
		}
		return marshalResult(eigenResult{Operation: op, Eigenvalues: vals})

	case MatrixDeterminant:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		det, err := d.matrix.Determinant(in)
		if err != nil {
			return "", err
		}
		return marshalResult(scalarResult{Operation: op, Value: det})

	case MatrixConditionNumber:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		k, err := d.matrix.ConditionNumber(in)
		if err != nil {
			return "", err
		}
		if math.IsInf(k, 1) {
			k = math.MaxFloat64 // JSON has no Inf
		}
		return marshalResult(scalarResult{Operation: op, Value: k})

	case MatrixSolve:
		a, b, err := codec.ParseLinearSystem(req.Data)
		if err != nil {
			return "", err
		}
		x, err := d.matrix.Solve(a, b)
		if err != nil {
			return "", err
		}
		return marshalResult(solveResult{Operation: op, Solution: x})

	case MatrixSVD:
		in, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		res, err := d.matrix.SVD(in)
		if err != nil {
			return "", err
		}
		return marshalResult(svdResult{
			Operation:      op,
			U:              res.U.ToRows(),
			SingularValues: res.S,
			V:              res.V.ToRows(),
		})

	default:
		return "", ErrUnknownMethod
	}
}

func (d *Dispatcher) execSignal(m Method, req ProcessingRequest) (string, error) {
	op := req.Method

	switch m {
	case SignalFFT:
		x, err := codec.ParseVector(req.Data)
		if err != nil {
			return "", err
		}
		spectrum, err := d.signal.FFT(x)
		if err != nil {
			return "", err
		}
		return marshalResult(spectrumResult{Operation: op, Length: len(spectrum), Spectrum: codec.MarshalSpectrum(spectrum)})

	case SignalIFFT:
		spectrum, err := codec.ParseSpectrum(req.Data)
		if err != nil {
			return "", err
		}
		x, err := d.signal.IFFT(spectrum)
		if err != nil {
			return "", err
		}
		return marshalResult(signalResult{Operation: op, Signal: x})

	case SignalFilter:
		x, err := codec.ParseVector(req.Data)
		if err != nil {
			return "", err
		}
		ft := signal.FilterType(optString(req.Options, "filter_type", string(signal.Lowpass)))
		cutoff, err := optFloat(req.Options, "cutoff", DefaultCutoff)
		if err != nil {
			return "", err
		}
		low, err := optFloat(req.Options, "low", 0)
		if err != nil {
			return "", err
		}
		high, err := optFloat(req.Options, "high", 0)
		if err != nil {
			return "", err
		}
		out, err := d.signal.ApplyFilter(x, ft, signal.FilterParams{Cutoff: cutoff, Low: low, High: high})
		if err != nil {
			return "", err
		}
		return marshalResult(signalResult{Operation: op, Signal: out})

	case SignalConvolve:
		a, b, err := codec.ParseVectorPair(req.Data, "signal", "kernel")
		if err != nil {
			return "", err
		}
		out, err := d.signal.Convolve(a, b)
		if err != nil {
			return "", err
		}
		return marshalResult(signalResult{Operation: op, Signal: out})

	case SignalDenoise:
		x, err := codec.ParseVector(req.Data)
		if err != nil {
			return "", err
		}
		threshold, err := optFloat(req.Options, "threshold", DefaultDenoiseThreshold)
		if err != nil {
			return "", err
		}
		out, err := d.signal.Denoise(x, threshold)
		if err != nil {
			return "", err
		}
		return marshalResult(signalResult{Operation: op, Signal: out})

	case SignalResample:
		x, err := codec.ParseVector(req.Data)
		if err != nil {
			return "", err
		}
		factor, err := optFloat(req.Options, "factor", DefaultResampleFactor)
		if err != nil {
			return "", err
		}
		out, err := d.signal.Resample(x, factor)
		if err != nil {
			return "", err
		}
		return marshalResult(signalResult{Operation: op, Signal: out})

	case SignalSNR:
		sig, noise, err := codec.ParseVectorPair(req.Data, "signal", "noise")
		if err != nil {
			return "", err
		}
		snr, err := d.signal.SNR(sig, noise)
		if err != nil {
			return "", err
		}
		return marshalResult(snrResult{Operation: op, SNRDb: snr})

	default:
		return "", ErrUnknownMethod
	}
}

func (d *Dispatcher) execVision(m Method, req ProcessingRequest) (string, error) {
	op := req.Method

	switch m {
	case VisionGaussianBlur:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		sigma, err := optFloat(req.Options, "sigma", DefaultBlurSigma)
		if err != nil {
			return "", err
		}
		out, err := d.vision.GaussianBlur(img, sigma)
		if err != nil {
			return "", err
		}
		return marshalResult(imageResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case VisionEdgeDetection:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		method := vision.EdgeMethod(optString(req.Options, "edge_method", string(vision.Sobel)))
		low, err := optFloat(req.Options, "low_threshold", vision.DefaultCannyLow)
		if err != nil {
			return "", err
		}
		high, err := optFloat(req.Options, "high_threshold", vision.DefaultCannyHigh)
		if err != nil {
			return "", err
		}
		out, err := d.vision.EdgeDetection(img, method, low, high)
		if err != nil {
			return "", err
		}
		return marshalResult(imageResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case VisionResize:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		width, err := optInt(req.Options, "width", img.Cols())
		if err != nil {
			return "", err
		}
		height, err := optInt(req.Options, "height", img.Rows())
		if err != nil {
			return "", err
		}
		out, err := d.vision.Resize(img, width, height)
		if err != nil {
			return "", err
		}
		return marshalResult(imageResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case VisionExtractFeatures:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		feats, err := d.vision.ExtractFeatures(img)
		if err != nil {
			return "", err
		}
		return marshalResult(featureResult{Operation: op, Features: feats})

	case VisionDetectCorners:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		threshold, err := optFloat(req.Options, "threshold", vision.DefaultCornerThreshold)
		if err != nil {
			return "", err
		}
		corners, err := d.vision.DetectCorners(img, threshold)
		if err != nil {
			return "", err
		}
		pts := make([][2]int, len(corners))
		for i, c := range corners {
			pts[i] = [2]int{c.Row, c.Col}
		}
		return marshalResult(cornerResult{Operation: op, Corners: pts, Count: len(pts)})

	case VisionMorphology:
		img, err := codec.ParseMatrix(req.Data)
		if err != nil {
			return "", err
		}
		morphOp := vision.MorphOp(optString(req.Options, "op", string(vision.Erode)))
		out, err := d.vision.Morphology(img, morphOp)
		if err != nil {
			return "", err
		}
		return marshalResult(imageResult{Operation: op, Rows: out.Rows(), Cols: out.Cols(), Values: out.ToRows()})

	case VisionSimilarity:
		a, b, err := codec.ParseMatrixPair(req.Data)
		if err != nil {
			return "", err
		}
		score, err := d.vision.Similarity(a, b)
		if err != nil {
			return "", err
		}
		return marshalResult(similarityResult{Operation: op, Similarity: score})

	default:
		return "", ErrUnknownMethod
	}
}

func (d *Dispatcher) execOptimize(m Method, req ProcessingRequest) (string, error) {
	op := req.Method

	switch m {
	case OptimizeGradientDescent, OptimizeSimulatedAnnealing, OptimizePSO:
		spec, err := codec.ParseOptimizationSpec(req.Data)
		if err != nil {
			return "", err
		}
		f, err := optimize.ByName(spec.Objective)
		if err != nil {
			return "", err
		}

		var res *optimize.Result
		switch m {
		case OptimizeGradientDescent:
			lr := spec.LearningRate
			if lr == 0 {
				lr = optimize.DefaultLearningRate
			}
			maxIter := spec.MaxIter
			if maxIter == 0 {
				maxIter = optimize.DefaultMaxIterations
			}
			res, err = d.optimize.GradientDescent(f, nil, spec.X0, lr, maxIter)

		case OptimizeSimulatedAnnealing:
			temp := spec.InitialTemp
			if temp == 0 {
				temp = optimize.DefaultInitialTemperature
			}
			cooling := spec.CoolingRate
			if cooling == 0 {
				cooling = optimize.DefaultCoolingRate
			}
			res, err = d.optimize.SimulatedAnnealing(f, spec.X0, temp, cooling)

		default: // OptimizePSO
			dims := spec.Dims
			if dims == 0 {
				dims = len(spec.X0)
			}
			particles := spec.Particles
			if particles == 0 {
				particles = optimize.DefaultParticles
			}
			maxIter := spec.MaxIter
			if maxIter == 0 {
				maxIter = optimize.DefaultMaxIterations
			}
			res, err = d.optimize.ParticleSwarm(f, dims, particles, maxIter)
		}
		if err != nil {
			return "", err
		}
		return marshalResult(optimizeResult{
			Operation:        op,
			OptimalSolution:  res.OptimalSolution,
			OptimalValue:     res.OptimalValue,
			Iterations:       res.Iterations,
			Converged:        res.Converged,
			ConvergenceError: res.ConvergenceError,
		})

	case OptimizeSolveODE:
		spec, err := codec.ParseODESpec(req.Data)
		if err != nil {
			return "", err
		}
		f, err := optimize.ODEByName(spec.ODE)
		if err != nil {
			return "", err
		}
		trajectory, err := d.optimize.SolveODE(f, spec.Y0, spec.T0, spec.TF, spec.Steps)
		if err != nil {
			return "", err
		}
		return marshalResult(odeResult{Operation: op, Trajectory: trajectory})

	case OptimizeIntegrateSimpson:
		spec, err := codec.ParseQuadratureSpec(req.Data)
		if err != nil {
			return "", err
		}
		f, err := optimize.IntegrandByName(spec.Integrand, spec.Scale)
		if err != nil {
			return "", err
		}
		value, err := d.optimize.IntegrateSimpson(f, spec.A, spec.B, spec.Intervals)
		if err != nil {
			return "", err
		}
		return marshalResult(quadratureResult{Operation: op, Value: value})

	default:
		return "", ErrUnknownMethod
	}
}
