package output_test

import (
	"testing"

	"github.com/temirov/copyctx/internal/output"
)

type fileBlock struct {
	header  string
	content string
	footer  string
}

func TestClipboardTextAssemblerBuild(t *testing.T) {
	testCases := []struct {
		name            string
		preText         string
		postText        string
		insertBlankLine bool
		files           []fileBlock
		expected        string
	}{
		{
			name:     "no_files_builds_empty_text",
			preText:  "PRE",
			postText: "POST",
			expected: "",
		},
		{
			name:            "single_file_with_pre_and_post",
			preText:         "PRE",
			postText:        "POST",
			insertBlankLine: true,
			files:           []fileBlock{{header: "H:a", content: "aaa", footer: "F:a"}},
			expected:        "PRE\nH:a\naaa\nF:a\n\nPOST",
		},
		{
			name:            "empty_footer_omitted",
			insertBlankLine: false,
			files:           []fileBlock{{header: "H:a", content: "aaa"}, {header: "H:b", content: "bbb"}},
			expected:        "H:a\naaa\nH:b\nbbb",
		},
		{
			name:            "blank_line_skipped_for_empty_content",
			insertBlankLine: true,
			files:           []fileBlock{{header: "H:a", content: "", footer: "F:a"}, {header: "H:b", content: "b", footer: "F:b"}},
			expected:        "H:a\n\nF:a\nH:b\nb\nF:b\n",
		},
		{
			name:     "pre_text_emitted_once",
			preText:  "PRE",
			files:    []fileBlock{{header: "1", content: "x"}, {header: "2", content: "y"}},
			expected: "PRE\n1\nx\n2\ny",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assembler := output.NewClipboardTextAssembler(testCase.preText, testCase.postText, testCase.insertBlankLine)
			for _, file := range testCase.files {
				assembler.AddFile(file.header, file.content, file.footer)
			}
			if assembler.FileCount() != len(testCase.files) {
				t.Fatalf("expected %d files, got %d", len(testCase.files), assembler.FileCount())
			}
			if actual := assembler.Build(); actual != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}

func TestJoinStructureText(t *testing.T) {
	const tree = "Directory structure:\n└── R/"
	testCases := []struct {
		name     string
		preText  string
		postText string
		expected string
	}{
		{name: "tree_only", expected: tree},
		{name: "pre_and_post", preText: "PRE", postText: "POST", expected: "PRE\n" + tree + "\nPOST"},
		{name: "pre_ending_with_newline", preText: "PRE\n", expected: "PRE\n" + tree},
		{name: "blank_pre_and_post_dropped", preText: "  \n", postText: "\t", expected: tree},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := output.JoinStructureText(testCase.preText, tree, testCase.postText); actual != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}
