// Package ui implements the interactive prompts using bubbletea's Elm architecture.
//
// Two prompts are run back to back by the inspect command:
//  1. Player picker : choose whose commands to view (single choice, filterable)
//  2. Type checklist : choose zero or more command types (multiple choice, none means all)
//
// Each prompt is its own short-lived [tea.Program]. [Prompter] runs them against the terminal and reports esc/ctrl+c as
// [shared.ErrPromptCancelled]. The program writes to stderr by default so stdout only carries rendered commands.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, space) with contextual help displayed via charmbracelet/bubbles/help.
package ui
