package mock

import "github.com/miraflynn/textcompare"

// Compile-time interface verification.
var (
	_ textcompare.PairLoader      = (*PairLoader)(nil)
	_ textcompare.PairResultSaver = (*PairResultSaver)(nil)
)

// PairLoader is a mock implementation of textcompare.PairLoader.
type PairLoader struct {
	LoadFn func(path string) ([]textcompare.Pair, error)
}

func (l *PairLoader) Load(path string) ([]textcompare.Pair, error) {
	return l.LoadFn(path)
}

// PairResultSaver is a mock implementation of textcompare.PairResultSaver.
type PairResultSaver struct {
	SaveFn func(path string, r textcompare.PairResult) error
}

func (s *PairResultSaver) Save(path string, r textcompare.PairResult) error {
	return s.SaveFn(path, r)
}
