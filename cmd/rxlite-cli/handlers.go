package main

import "fmt"

// Request is a mock inbound request record. It only exists to give the
// stream something to carry; the library neither knows nor cares.
type Request struct {
	User   string
	Method string
	Path   string
}

// Result is the status shape shared by the request and error handlers.
type Result struct {
	Status  int
	Message string
}

// handleRequest maps a request to a success result.
func handleRequest(req Request) Result {
	return Result{
		Status:  200,
		Message: fmt.Sprintf("%s %s by %s", req.Method, req.Path, req.User),
	}
}

// handleError maps any terminal error to the same result shape.
func handleError(err error) Result {
	return Result{
		Status:  500,
		Message: err.Error(),
	}
}

var mockUsers = []string{"alice", "bob", "carol"}

func mockRequests(n int) []Request {
	requests := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		requests = append(requests, Request{
			User:   mockUsers[i%len(mockUsers)],
			Method: "GET",
			Path:   fmt.Sprintf("/orders/%d", i+1),
		})
	}
	return requests
}
