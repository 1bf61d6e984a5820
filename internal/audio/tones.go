package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation so overlapping effects
// never clip harshly.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope value at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// genFlap: short ascending FM whoosh, like a wing snap.
func genFlap() []byte {
	n := int(0.10 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(42424)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.0, 0.15)
		freq := 260 + 340*p
		s := fm(t, freq, 1.5, 2.2*env) * env * 0.45
		// Airy noise layer.
		s += lcg(&seed) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genScore: bright two-note FM bell.
func genScore() []byte {
	freqs := []float64{659.25, 1046.5} // E5 C6
	noteLen := sampleRate * 70 / 1000
	tail := int(0.14 * sampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.55, 0.04, 0.3)
			s := fm(t, freq, 2.756, 4.5*env) * env * 0.36
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: sub thump with a noise crack and descending tone.
func genHit() []byte {
	n := int(0.35 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.06 {
			crack = lcg(&seed) * (1 - p/0.06) * 0.5
		}
		thumpFreq := 160 * math.Pow(0.25, p*2)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*9) * 0.6
		drop := fm(t, 280-200*p, 1.5, 2.0*(1-p)) * math.Exp(-p*6) * 0.3
		s := crack + thump + drop
		putStereoF32(buf, i, softSat(s*0.85))
	}
	return buf
}

// musicReader streams an endless synthesized background loop: a soft
// chord bed, a sub bass pulse, and a sparse pluck melody.
type musicReader struct {
	t       float64
	seed    uint64
	measure int
}

const musicTempo = 1.75 // 105 BPM

var musicChords = [][]float64{
	{261.6, 329.6, 392.0},  // C
	{220.0, 261.6, 329.6},  // Am
	{174.6, 220.0, 261.6},  // F
	{196.0, 246.9, 293.7},  // G
	{261.6, 329.6, 392.0},  // C
	{164.8, 207.7, 246.9},  // Em
	{174.6, 220.0, 261.6},  // F
	{196.0, 246.9, 311.14}, // G aug color
}

var pluckLine = [8]float64{523.25, 0, 659.25, 0, 587.33, 0, 523.25, 493.88}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / sampleRate
		beatLen := 1.0 / musicTempo
		trig := math.Mod(m.t, beatLen)
		currentBeat := int(m.t * musicTempo)
		m.measure = currentBeat / 2
		chord := musicChords[m.measure%len(musicChords)]

		s := 0.0

		// Chord bed.
		for _, freq := range chord {
			ph := 2 * math.Pi * freq * m.t
			s += (math.Sin(ph)*0.6 + math.Sin(ph*2)*0.15) * 0.08
		}

		// Sub bass on each beat.
		bEnv := math.Exp(-trig * 5)
		s += math.Sin(2*math.Pi*(chord[0]/2)*m.t) * bEnv * 0.28

		// Pluck melody on 8ths.
		step := int(m.t*musicTempo*2) % 8
		note := pluckLine[step]
		if note > 0 {
			pEnv := adsr(math.Mod(m.t*musicTempo*2, 1.0), 0.01, 0.4, 0.1, 0.2)
			s += fm(m.t, note, 2.0, 2.5*pEnv) * pEnv * 0.16
		}

		// Soft shaker on offbeats.
		if step%2 == 1 {
			s += lcg(&m.seed) * math.Exp(-math.Mod(m.t*musicTempo*2, 1.0)*18) * 0.04
		}

		duck := 1.0 - 0.08*math.Exp(-trig*12)
		putStereoF32(p, i, softSat(s*duck*0.9))
	}
	return len(p), nil
}
