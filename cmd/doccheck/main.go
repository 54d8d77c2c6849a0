// Command doccheck compiles argument checkers from documented parameter types
// and runs them against the sample calls listed in a YAML manifest.
package main

func main() {
	Execute()
}
