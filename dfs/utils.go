// Package dfs - slice helpers shared by the graph consumers.
package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
