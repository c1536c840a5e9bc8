// Command tripview views a travel itinerary in the terminal, a browser or on paper.
package main

import "github.com/jkhomeclaw/tripview/cmd"

func main() {
	cmd.Execute()
}
