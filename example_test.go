// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtree_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/fixtree"
)

func ExampleEncode() {
	bits := fixtree.Encode([]byte("EACFH"))
	fmt.Println(string(bits))
	fmt.Println(string(fixtree.Decode(bits, fixtree.Strict)))
	// Output:
	// 0001101101110
	// EACFH
}

func ExampleWriter() {
	var buf bytes.Buffer
	w, err := fixtree.NewWriterConfig(&buf,
		fixtree.WriterConfig{Limit: 6})
	if err != nil {
		log.Fatalf("fixtree.NewWriterConfig error %s", err)
	}
	if _, err = io.WriteString(w, "NO ONE"); err != nil {
		log.Fatalf("io.WriteString error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	fmt.Println(buf.String(), w.Truncated())
	// Output:
	// 111111 true
}

func ExampleReader() {
	r, err := fixtree.NewReader(bytes.NewReader([]byte("1111110" + "00")))
	if err != nil {
		log.Fatalf("fixtree.NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	// Output:
	// ME
}
