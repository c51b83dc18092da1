package check

// TestSuite returns every check, in the order they are reported.
func TestSuite() []Check {
	return []Check{
		JSONSyntax,
		Package,
		Theme,
		RequiredFiles,
		Contrast,
		Completeness,
		Consistency,
		Performance,
	}
}

// BuildSuite returns the checks a build must pass.
func BuildSuite() []Check {
	return []Check{Package, BuildTheme, BuildFiles}
}
