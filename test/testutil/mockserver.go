// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// MockServer wraps an httptest server and counts requests.
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// RequestCount returns the number of requests the server has handled.
func (s *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// NewMockServer creates a mock server backed by the given handler.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	s := &MockServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.requestCount, 1)
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// NewSearchServer creates a mock server that answers every GraphQL
// request with the same canned response body.
func NewSearchServer(t *testing.T, response interface{}) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})
}

// NewErrorServer creates a mock server that always returns the specified
// HTTP status code.
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	})
}

// NewPagedSearchServer creates a mock server that serves one response
// per request, in order. Requests past the last response repeat it.
func NewPagedSearchServer(t *testing.T, responses ...interface{}) *MockServer {
	t.Helper()
	var served int32
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		idx := int(atomic.AddInt32(&served, 1)) - 1
		if idx >= len(responses) {
			idx = len(responses) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responses[idx])
	})
}
