package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/strview"
)

// Profiling entrypoint: hammers the search and trim paths over a large
// buffer under MemProfileRate=1 so any stray allocation shows up in the
// heap profile.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	body := strings.Repeat("key: value\nother-key: other-value\n", 4096)
	doc := strview.Of(body)
	needle := strview.Of("other-key")
	var hits int
	for i := 0; i < 1000; i++ {
		line := doc
		for !line.IsEmpty() {
			nl := line.IndexByte('\n')
			if nl == strview.NotFound {
				nl = line.Size()
			}
			field := line.RemovePrefix(nl)
			line.RemovePrefix(1)
			if field.HasPrefix(needle) {
				hits++
			}
		}
		if doc.IndexNth(needle, 2) == strview.NotFound {
			log.Fatal("needle vanished")
		}
	}
	log.Printf("hits: %d", hits)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
