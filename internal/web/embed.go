package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/muurk/wordhunt/internal/board"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

// StaticFS returns a file system for serving /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses and returns the embedded templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"cells": boardCells,
	}).ParseFS(Assets, "templates/*.tmpl"))
}

// boardCells returns the letters of a board row by row, "" for empty cells
func boardCells(s string) [][]string {
	b := board.Board(s)
	rows := make([][]string, board.Size)
	for r := range rows {
		rows[r] = make([]string, board.Size)
		for c := range rows[r] {
			if ch := b.At(r, c); ch != 0 && ch != ' ' {
				rows[r][c] = strings.ToUpper(string(ch))
			}
		}
	}
	return rows
}
