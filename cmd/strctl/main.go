// Command strctl runs libstring buffer operations from the command line.
package main

func main() {
	execute()
}
