package audio

import (
	"testing"
)

func TestEatSoundLength(t *testing.T) {
	rate := sampleRate
	s, err := EatSound(rate)
	if err != nil {
		t.Fatalf("EatSound() error = %v", err)
	}

	expected := 2 * rate.N(noteLength)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != expected {
		t.Errorf("streamed %d samples, expected %d", total, expected)
	}
}

func TestEatSoundIsQuiet(t *testing.T) {
	s, err := EatSound(sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 1024)
	n, _ := s.Stream(buf)

	peak := 0.0
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v > peak {
			peak = v
		}
	}
	if peak == 0 || peak > volume+0.01 {
		t.Errorf("peak amplitude %f, expected within (0, %f]", peak, volume)
	}
}

func TestNilChime(t *testing.T) {
	var c *Chime
	c.Eat()
	c.Close()
}

func TestUninitializedChime(t *testing.T) {
	c := &Chime{}
	c.Eat()
	c.Close()
}

func TestOpenDisabled(t *testing.T) {
	if c := Open(false, nil); c != nil {
		t.Error("Open(false) should return a nil chime")
	}
}
