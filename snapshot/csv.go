package snapshot

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var header = []string{"type", "value"}

// CSVWriter 每次写入生成一个 frame_{step:05d}.csv 文件
// 目录需要事先存在
type CSVWriter struct {
	dir    string
	bufLen int
	frames int
}

func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{
		dir:    dir,
		bufLen: 256 * 1024,
	}
}

func FrameName(step int) string {
	return fmt.Sprintf("frame_%05d.csv", step)
}

func (w *CSVWriter) Path(step int) string {
	return filepath.Join(w.dir, FrameName(step))
}

// Frames 已写入的文件数
func (w *CSVWriter) Frames() int {
	return w.frames
}

func (w *CSVWriter) Write(step int, electric, magnetic []float64) error {
	path := w.Path(step)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, w.bufLen)
	cw := csv.NewWriter(bw)
	err = writeRows(cw, electric, magnetic)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("csv write %s: %w", path, err)
	}

	w.frames++
	log.WithFields(log.Fields{
		"step": step,
		"path": path,
	}).Debug("快照已写入")
	return nil
}

func writeRows(cw *csv.Writer, electric, magnetic []float64) error {
	if err := cw.Write(header); err != nil {
		return err
	}
	row := []string{"E", ""}
	for _, v := range electric {
		row[1] = FormatValue(v)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	row[0] = "H"
	for _, v := range magnetic {
		row[1] = FormatValue(v)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatValue 最短且可无损还原的十进制表示
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
