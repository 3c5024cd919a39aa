// Package config holds the gomodelinfo command line configuration.
//
// Values come from three layers, later ones winning: built-in defaults
// (NewConfig), an optional YAML file, and command line flags. The file is
// looked up at an explicit --config path, then ./.gomodelinfo.yaml, then
// $XDG_CONFIG_HOME/gomodelinfo/config.yaml
package config
