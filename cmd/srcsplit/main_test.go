package main

import "testing"

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"split", "check", "version"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, flag := range []string{"verbose", "config", "source", "out"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not defined", flag)
		}
	}
}
