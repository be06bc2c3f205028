package core_test

import (
	"fmt"

	"github.com/phantompay1/EVA/core"
)

// ExampleDispatcher_ProcessRequest demonstrates a full dispatch round
// trip for a matrix product.
func ExampleDispatcher_ProcessRequest() {
	d := core.New()

	resp := d.ProcessRequest(core.ProcessingRequest{
		Method: "matrix_multiply",
		Data:   `{"a": [[1, 0], [0, 1]], "b": [[1, 2], [3, 4]]}`,
	})

	fmt.Println(resp.Success)
	fmt.Println(resp.Result)
	// Output:
	// true
	// {"operation":"matrix_multiply","rows":2,"cols":2,"values":[[1,2],[3,4]]}
}

// ExampleDispatcher_ProcessRequest_unknownMethod shows how routing
// failures are reported.
func ExampleDispatcher_ProcessRequest_unknownMethod() {
	d := core.New()

	resp := d.ProcessRequest(core.ProcessingRequest{Method: "quantum_solve"})

	fmt.Println(resp.Success, resp.Error)
	// Output:
	// false Unknown method: quantum_solve
}
