package audio

import (
	"context"
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"sample-organizer/internal/shared"
)

// STFT geometry. Frames overlap 4:1; the hop also sets the time resolution
// of the tempo estimate (one hop ~ 23 ms at the analysis rate).
const (
	frameSize = 2048
	hopSize   = 512
)

// Tempo search bounds in BPM.
const (
	minTempoBPM = 30
	maxTempoBPM = 300
)

// Extractor computes scalar acoustic descriptors from audio files, using
// ffmpeg for decoding and an STFT for the spectral features.
type Extractor struct {
	ffmpegPath string
}

// NewExtractor creates a new Extractor
func NewExtractor(ffmpegPath string) *Extractor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Extractor{ffmpegPath: ffmpegPath}
}

// DecodeAndAnalyze decodes at most maxSeconds of audio from filePath and
// returns its acoustic descriptors.
func (e *Extractor) DecodeAndAnalyze(ctx context.Context, filePath string, maxSeconds int) (*shared.FeatureValues, error) {
	samples, err := DecodePCM(ctx, e.ffmpegPath, filePath, maxSeconds)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, errors.New("decoded stream is empty")
	}
	return AnalyzeSamples(samples, SampleRate), nil
}

// AnalyzeSamples computes all descriptors from decoded mono samples. Pure
// and total: silence and degenerate inputs yield zeros, never NaN.
func AnalyzeSamples(samples []float64, sampleRate int) *shared.FeatureValues {
	fv := &shared.FeatureValues{}
	if len(samples) == 0 {
		return fv
	}

	fv.ZeroCrossingRate = zeroCrossingRate(samples)
	fv.LoudnessRMS = rootMeanSquare(samples)

	mags := spectrogram(samples)
	fv.Brightness, fv.SpectralBandwidth = spectralShape(mags, sampleRate)
	fv.ComputedBPM = estimateTempo(mags, sampleRate)
	return fv
}

func zeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}

func rootMeanSquare(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// spectrogram computes Hann-windowed magnitude spectra, one row per hop.
// Inputs shorter than a frame are zero-padded to a single frame.
func spectrogram(samples []float64) [][]float64 {
	frames := 1
	if len(samples) > frameSize {
		frames = 1 + (len(samples)-frameSize)/hopSize
	}

	win := hannWindow(frameSize)
	fft := fourier.NewFFT(frameSize)
	buf := make([]float64, frameSize)

	mags := make([][]float64, frames)
	for i := 0; i < frames; i++ {
		start := i * hopSize
		for k := 0; k < frameSize; k++ {
			if start+k < len(samples) {
				buf[k] = samples[start+k] * win[k]
			} else {
				buf[k] = 0
			}
		}
		coeffs := fft.Coefficients(nil, buf)
		row := make([]float64, len(coeffs))
		for k, c := range coeffs {
			row[k] = cmplx.Abs(c)
		}
		mags[i] = row
	}
	return mags
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// spectralShape returns the mean spectral centroid (brightness) and mean
// spectral bandwidth across all frames carrying energy, in Hz.
func spectralShape(mags [][]float64, sampleRate int) (centroid, bandwidth float64) {
	binHz := float64(sampleRate) / frameSize

	var centroidSum, bandwidthSum float64
	counted := 0
	for _, row := range mags {
		var total, weighted float64
		for k, m := range row {
			total += m
			weighted += float64(k) * binHz * m
		}
		if total < 1e-9 {
			continue
		}
		c := weighted / total

		var spread float64
		for k, m := range row {
			d := float64(k)*binHz - c
			spread += m * d * d
		}
		centroidSum += c
		bandwidthSum += math.Sqrt(spread / total)
		counted++
	}
	if counted == 0 {
		return 0, 0
	}
	return centroidSum / float64(counted), bandwidthSum / float64(counted)
}

// estimateTempo autocorrelates the positive spectral flux and reads the
// tempo off the strongest lag within the BPM bounds. Material without a
// periodic onset structure (pads, one-shots, silence) yields 0.
func estimateTempo(mags [][]float64, sampleRate int) float64 {
	if len(mags) < 2 {
		return 0
	}

	flux := make([]float64, len(mags)-1)
	for t := 1; t < len(mags); t++ {
		prev, cur := mags[t-1], mags[t]
		var sum float64
		for k := range cur {
			if d := cur[k] - prev[k]; d > 0 {
				sum += d
			}
		}
		flux[t-1] = sum
	}

	var mean float64
	for _, v := range flux {
		mean += v
	}
	mean /= float64(len(flux))
	for i := range flux {
		flux[i] -= mean
	}

	framesPerSecond := float64(sampleRate) / hopSize
	minLag := int(math.Ceil(framesPerSecond * 60 / maxTempoBPM))
	maxLag := int(math.Floor(framesPerSecond * 60 / minTempoBPM))
	if maxLag > len(flux)-1 {
		maxLag = len(flux) - 1
	}
	if minLag < 1 {
		minLag = 1
	}
	if minLag > maxLag {
		return 0
	}

	bestLag := 0
	bestScore := 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		var score float64
		for t := 0; t+lag < len(flux); t++ {
			score += flux[t] * flux[t+lag]
		}
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}
	if bestLag == 0 || bestScore <= 0 {
		return 0
	}
	return framesPerSecond * 60 / float64(bestLag)
}
