package main

import (
	"fmt"
	"os"

	"github.com/marcelsud/webhook-capture/seed"
)

/* validate-profile - Standalone CLI tool to validate a seeding profile
 * Usage: go run cmd/validate-profile/main.go [profile.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	// Get profile file path from args or use default
	profileFile := "profile.yaml"
	if len(os.Args) > 1 {
		profileFile = os.Args[1]
	}

	fmt.Printf("Validating seeding profile: %s\n", profileFile)

	profile, err := seed.LoadProfile(profileFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Count: %d\n", profile.Count)

	fmt.Printf("\nPaths (%d):\n", len(profile.Paths))
	for _, path := range profile.Paths {
		fmt.Printf("   %s\n", path)
	}

	fmt.Printf("\nEvent types (%d):\n", len(profile.EventTypes))
	for _, eventType := range profile.EventTypes {
		fmt.Printf("   %s\n", eventType)
	}

	fmt.Printf("\n✓ Profile is valid!\n")
	os.Exit(0)
}
