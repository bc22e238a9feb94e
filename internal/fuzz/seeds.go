package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []struct {
	input   string
	pattern string
	size    uint8
}{
	{"a\nb\nc b\nd\n", "b", 1},
	{"one\ntwo\nthree\n", "x", 0},
	{"AAA\n", "(?i)a", 0},
	{"", "", 3},
	{"\n\n\n", "^$", 2},
	{"crlf\r\nline\r\n", "line$", 1},
	{"no trailing newline", "line", 4},
	{"\xef\xbb\xbfbom first\nsecond\n", "^bom", 1},
	{"\xff\xfeh\x00i\x00\n\x00", "hi", 1},
	{"bad \xff byte\nok\n", "\\xff|ok", 2},
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s.input), s.pattern, s.size)
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "cmd", "grab", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src), "the", uint8(1))
		f.Add(clampSeed(src), "^[A-Z]", uint8(2))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
