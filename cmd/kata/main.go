// The kata command drives interview-prep drill sessions from the terminal:
// listing drills, running them one-off or from a plan file, serving the
// monitoring dashboard, and reporting recorded results.
package main

func main() {
	Execute()
}
