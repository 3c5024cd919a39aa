// Package log builds the slog loggers used by the gomodelinfo commands.
// Library packages under pkg/ never create loggers themselves; they accept
// one and stay silent without it
package log
