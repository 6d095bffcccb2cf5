// Package config manages the Word Hunt Solver settings file.
//
// Settings are kept in a versioned YAML file in the platform's config
// directory:
//   - Linux: $XDG_CONFIG_HOME/wordhunt/config.yaml or $HOME/.config/wordhunt/config.yaml
//   - macOS: $HOME/.config/wordhunt/config.yaml
//   - Windows: %LOCALAPPDATA%\wordhunt\config.yaml
//
// A missing file means defaults. Values come, lowest precedence first, from
// the defaults, the file, and WORDHUNT_* environment variables; commands
// apply their own flags last.
//
//	registry, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := solverapi.NewClient(registry.Solver.Endpoint)
//	client.SetTimeout(registry.Solver.Timeout())
//
// Writes are atomic (temporary file plus rename) and serialized by a mutex.
package config
