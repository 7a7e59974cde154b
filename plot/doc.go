// SPDX-License-Identifier: MIT

// Package plot draws a cubature scheme mapped onto a quadrilateral as a
// character grid for terminals.
//
// The domain outline is traced with '·'. Each scheme point p(ξ_i) is marked
// with a glyph sized by |w_i| relative to the largest |w|:
//
//	∙  below 1/3      •  below 2/3      ●  otherwise
//
// Positive and negative weights use separate lipgloss styles (green and red
// by default), so schemes with negative weights such as the higher open
// Newton–Cotes rules stand out. Output is for display only.
package plot
