package main

import (
	"flag"
	"log"
	"net/http"
)

// main will serve a wasm build of the game, by default from the "dist"
// folder on port 8080
func main() {
	dir := flag.String("dir", "./dist", "folder holding index.html, wasm_exec.js and main.wasm")
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	fs := http.FileServer(http.Dir(*dir))
	http.Handle("/", fs)

	log.Printf("Serving %s on %s...", *dir, *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
