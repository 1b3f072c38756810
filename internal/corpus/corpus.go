// Package corpus loads test corpora and measures the size of the data
// written for them.
package corpus

import (
	"io/fs"
)

// File is a corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus. If limit is positive, only the
// first limit bytes of each file are kept.
func Files(corpus fs.FS, limit int) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			if limit > 0 && len(data) > limit {
				data = data[:limit]
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Counter is a writer that only counts the bytes written to it.
type Counter struct {
	N int64
}

func (w *Counter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.N += int64(n)
	return n, nil
}
