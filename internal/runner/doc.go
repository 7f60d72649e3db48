// Package runner plumbs descriptor-declared parameters at execution time:
// it resolves input values from INPUT_* environment variables and appends
// output values to the command file named by GITHUB_OUTPUT.
package runner
