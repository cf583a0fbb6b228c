// Package advicelog appends every suggestion to a daily JSON-lines file so a
// day's advice can be reviewed or summarized later. Files older than the
// retention window are gzip-compressed.
package advicelog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var mu sync.Mutex

type Entry struct {
	Time     string  `json:"time"`
	Symbol   string  `json:"symbol"`
	Action   string  `json:"action"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
	Price    float64 `json:"price"`
	Provider string  `json:"provider"`
}

func logDir() string {
	if v := os.Getenv("ADVISOR_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func istNow() time.Time { return time.Now().In(time.FixedZone("IST", 19800)) }

func dailyFilepath(t time.Time) string {
	return filepath.Join(logDir(), t.Format("2006-01-02")+".txt")
}

func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := istNow()
	e.Time = now.Format("2006-01-02 15:04:05")
	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files whose mtime is past the retention window.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(logDir(), func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, err := os.Stat(p)
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		gz := p + ".gz"
		if _, err := os.Stat(gz); err == nil {
			return os.Remove(p)
		}
		if err := compressFile(p, gz); err == nil {
			return os.Remove(p)
		}
		return nil
	})
}

func compressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}
