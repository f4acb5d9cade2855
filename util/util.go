package util

import (
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GetKeys returns the map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the non-negative remainder, so Mod(-1, 12) == 11.
func Mod[A constraints.Integer](a A, n A) A {
	res := a % n
	if res < 0 {
		res += n
	}
	return res
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
