/*
Package server implements msgpack IPC for the song catalog.

The server exposes the catalog call surface over stdin/stdout using binary
msgpack encoding. Each request carries an ID, an op and the op's arguments;
responses echo the ID and include timing info in microseconds.

# IPC

Catalog ops mirror the library API one to one:

	{"id": "req_001", "op": "add", "n": "Blue Moon"}
	{"id": "req_002", "op": "search", "n": "blue moon"}
	{"id": "req_003", "op": "play", "n": "Blue Moon"}
	{"id": "req_004", "op": "top"}

search responds with a found flag, top with the current most played name:

	{"id": "req_002", "ok": true, "f": true, "t": 12}
	{"id": "req_004", "ok": true, "n": "blue moon", "t": 8}

Storage ops read and write the line-oriented library file; reset clears the
whole catalog, and info reports counters:

	{"id": "st_001", "op": "save", "path": "library.txt"}
	{"id": "st_002", "op": "load", "path": "library.txt"}
	{"id": "st_003", "op": "reset"}
	{"id": "st_004", "op": "info"}

Failed storage I/O is the only catalog fault surfaced as an error response;
every other edge (unknown name, full ranker, empty catalog) keeps the
library's silent no-op semantics and answers ok.
*/
package server

// Request is one incoming catalog operation.
type Request struct {
	ID   string `msgpack:"id"`
	Op   string `msgpack:"op"`
	Name string `msgpack:"n,omitempty"`
	Path string `msgpack:"path,omitempty"`
}

// Response is the result of a catalog operation.
type Response struct {
	ID        string         `msgpack:"id"`
	OK        bool           `msgpack:"ok"`
	Found     bool           `msgpack:"f,omitempty"`
	Name      string         `msgpack:"n,omitempty"`
	Stats     map[string]int `msgpack:"stats,omitempty"`
	TimeTaken int64          `msgpack:"t"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
