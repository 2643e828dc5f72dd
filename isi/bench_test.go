package isi_test

import (
	"testing"

	"github.com/katalvlaran/hierarchia/isi"
	"github.com/katalvlaran/hierarchia/trial"
)

func BenchmarkISI98(b *testing.B) {
	s := deVries(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := isi.ISI98(s, 100, trial.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
