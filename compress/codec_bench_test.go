package compress

import (
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for name, data := range testPayloads() {
		if len(data) < 1024 {
			continue
		}
		for typ, codec := range getAllCodecs() {
			b.Run(typ.String()+"/"+name, func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for name, data := range testPayloads() {
		if len(data) < 1024 {
			continue
		}
		for typ, codec := range getAllCodecs() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(typ.String()+"/"+name, func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := testPayloads()["text"]

	for typ, codec := range getAllCodecs() {
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					compressed, _ := codec.Compress(data)
					_, _ = codec.Decompress(compressed)
				}
			})
		})
	}
}
