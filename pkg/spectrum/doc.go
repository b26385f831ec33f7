// ABOUTME: Spectrum analysis package
// ABOUTME: Windowed FFT magnitudes and rolling-peak automatic gain control
// Package spectrum turns mono audio frames into normalized magnitude spectra.
//
// An Analyzer applies a Hann window and a real FFT, keeping the first
// MaxFreqIndex bins. A RollingPeak then tracks the loudness of recent
// spectra (fast attack, slow decay) and rescales each spectrum so bar
// heights stay visually stable regardless of playback volume:
//
//	analyzer := spectrum.NewAnalyzer(audio.BufferSize, spectrum.MaxFreqIndex)
//	peak := spectrum.NewRollingPeak()
//
//	raw := analyzer.Analyze(frame)
//	normalized, scale := peak.Update(raw)
package spectrum
