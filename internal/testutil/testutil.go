package testutil

import (
	"net/http"
	"testing"
)

// CheckTestServer reports whether a mock API server answers at url. When it
// does not, the test is skipped unless SKIP_MOCK_TESTS is "false".
func CheckTestServer(t *testing.T, url string) bool {
	if _, err := http.Get(url); err != nil {
		const SKIP_MOCK_TESTS = "SKIP_MOCK_TESTS"
		if str, ok := lookupEnv(SKIP_MOCK_TESTS); ok && str == "false" {
			t.Fatalf("Mock server is not reachable at %s: %s", url, err.Error())
		}
		t.Skipf("The test will not run without a mock server running against the OpenAPI document at %s", url)
		return false
	}
	return true
}
