//go:build boarddebug

package board

const debugAssertions = true
