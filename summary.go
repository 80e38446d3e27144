package autoenc

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// runTag returns a short timestamp used to name run directories, e.g.
// "jan2_15-04".
func runTag() string {
	return strings.ToLower(time.Now().Format("Jan2_15-04"))
}

// summary writes scalar loss values for one training run as CSV, into a
// timestamped directory under the log directory.
type summary struct {
	f *os.File
	w *csv.Writer
}

func newSummary(logDir, name string) (*summary, error) {
	dir := logDir + "/" + name + "_run-" + runTag()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "Couldn't make summary directory %q\n", dir)
	}

	f, err := os.Create(dir + "/loss.csv")
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't create 'loss.csv' in %q\n", dir)
	}

	s := &summary{f: f, w: csv.NewWriter(f)}
	if err = s.w.Write([]string{"step", "epoch", "loss"}); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "Couldn't write summary header\n")
	}

	return s, nil
}

func (s *summary) add(step, epoch int, value float64) error {
	return s.w.Write([]string{
		strconv.Itoa(step),
		strconv.Itoa(epoch),
		strconv.FormatFloat(value, 'g', -1, 64),
	})
}

func (s *summary) close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return errors.Wrapf(err, "Couldn't flush summary\n")
	}

	return s.f.Close()
}
