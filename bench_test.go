package strmap

import (
	"fmt"
	"testing"
)

func benchKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("X-Header-%08d", i))
	}
	return keys
}

func benchmarkStdMapSet(factor int, b *testing.B) {
	keys := benchKeys(factor)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := map[string]int{}
		for i, k := range keys {
			m[string(k)] = i
		}
	}
}

func BenchmarkStdMapSet10(b *testing.B)  { benchmarkStdMapSet(10, b) }
func BenchmarkStdMapSet100(b *testing.B) { benchmarkStdMapSet(100, b) }
func BenchmarkStdMapSet1k(b *testing.B)  { benchmarkStdMapSet(1_000, b) }
func BenchmarkStdMapSet10k(b *testing.B) { benchmarkStdMapSet(10_000, b) }

func benchmarkStdMapGet(factor int, b *testing.B) {
	keys := benchKeys(factor)
	m := map[string]int{}
	for i, k := range keys {
		m[string(k)] = i
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, k := range keys {
			_ = m[string(k)]
		}
	}
}

func BenchmarkStdMapGet10(b *testing.B)  { benchmarkStdMapGet(10, b) }
func BenchmarkStdMapGet100(b *testing.B) { benchmarkStdMapGet(100, b) }
func BenchmarkStdMapGet1k(b *testing.B)  { benchmarkStdMapGet(1_000, b) }
func BenchmarkStdMapGet10k(b *testing.B) { benchmarkStdMapGet(10_000, b) }

func benchmarkSet(factor int, b *testing.B) {
	keys := benchKeys(factor)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := New[int]()
		for i, k := range keys {
			m.Set(k, i)
		}
	}
}

func BenchmarkSet10(b *testing.B)  { benchmarkSet(10, b) }
func BenchmarkSet100(b *testing.B) { benchmarkSet(100, b) }
func BenchmarkSet1k(b *testing.B)  { benchmarkSet(1_000, b) }
func BenchmarkSet10k(b *testing.B) { benchmarkSet(10_000, b) }

func benchmarkUpdate(factor int, b *testing.B) {
	keys := benchKeys(factor)
	m := New[int]()
	for i, k := range keys {
		m.Set(k, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i, k := range keys {
			m.Set(k, i+n)
		}
	}
}

func BenchmarkUpdate10(b *testing.B)  { benchmarkUpdate(10, b) }
func BenchmarkUpdate100(b *testing.B) { benchmarkUpdate(100, b) }
func BenchmarkUpdate1k(b *testing.B)  { benchmarkUpdate(1_000, b) }
func BenchmarkUpdate10k(b *testing.B) { benchmarkUpdate(10_000, b) }

func benchmarkGet(factor int, b *testing.B) {
	keys := benchKeys(factor)
	m := New[int]()
	for i, k := range keys {
		m.Set(k, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, k := range keys {
			_ = m.Get(k)
		}
	}
}

func BenchmarkGet10(b *testing.B)  { benchmarkGet(10, b) }
func BenchmarkGet100(b *testing.B) { benchmarkGet(100, b) }
func BenchmarkGet1k(b *testing.B)  { benchmarkGet(1_000, b) }
func BenchmarkGet10k(b *testing.B) { benchmarkGet(10_000, b) }

func benchmarkIter(factor int, b *testing.B) {
	keys := benchKeys(factor)
	m := New[int]()
	for i, k := range keys {
		m.Set(k, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		it := m.ConstIter()
		for it.Next() {
			_ = it.Value()
		}
	}
}

func BenchmarkIter100(b *testing.B) { benchmarkIter(100, b) }
func BenchmarkIter10k(b *testing.B) { benchmarkIter(10_000, b) }

func benchmarkEach(factor int, b *testing.B) {
	keys := benchKeys(factor)
	m := New[int]()
	for i, k := range keys {
		m.Set(k, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Each(func(string, int) bool { return true })
	}
}

func BenchmarkEach100(b *testing.B) { benchmarkEach(100, b) }
func BenchmarkEach10k(b *testing.B) { benchmarkEach(10_000, b) }
