package utils

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}

func Min(x, y int) int {
	if x <= y {
		return x
	}
	return y
}

// InsertTo inserts value at index, shifting the rest right. index must be
// in [0, len(a)].
func InsertTo[T any](a []T, index int, value T) []T {
	if index == len(a) {
		return append(a, value)
	}
	a = append(a[:index+1], a[index:]...)
	a[index] = value
	return a
}

func Remove[T any](slice []T, s int) []T {
	return append(slice[:s], slice[s+1:]...)
}

func Contains[T comparable](slice []T, e T) bool {
	for _, val := range slice {
		if val == e {
			return true
		}
	}
	return false
}

type Set map[int]struct{}

func (this Set) Add(value int) { this[value] = struct{}{} }
func (s Set) Delete(value int) { delete(s, value) }
func (s Set) Contains(value int) bool {
	_, exists := s[value]
	return exists
}

// AddSpan adds every value from from to to, inclusive.
func (this Set) AddSpan(from, to int) {
	for v := from; v <= to; v++ { this.Add(v) }
}

// returns all keys in the set, sorted.
func (this Set) GetKeys() []int {
	keys := make([]int, 0, len(this))
	for key := range this { keys = append(keys, key) }
	sort.Ints(keys)
	return keys
}

// AskForConfirmation prompts message until a y/n answer is read from in.
func AskForConfirmation(in io.Reader, out io.Writer, message string) bool {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s (y/n): ", message)
		if !scanner.Scan() { return false }

		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if strings.HasPrefix(answer, "y") { return true }
		if strings.HasPrefix(answer, "n") { return false }

		fmt.Fprintln(out, "Invalid input. Please enter 'y' for yes or 'n' for no.")
	}
}

// AskForInput prompts once and returns the trimmed answer, empty on EOF.
func AskForInput(in io.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() { return "" }
	return strings.TrimSpace(scanner.Text())
}
