package regression

import (
	"fmt"
	"math"
	"strings"
)

const summaryWidth = 78

// Summary renders the fit as a fixed-width text table in the layout of
// statsmodels' OLS summary.
func (m *Model) Summary() string {
	var sb strings.Builder
	double := strings.Repeat("=", summaryWidth) + "\n"
	single := strings.Repeat("-", summaryWidth) + "\n"

	title := "OLS Regression Results"
	pad := (summaryWidth - len(title)) / 2
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString(double)

	left := [][2]string{
		{"Dep. Variable:", m.Dependent},
		{"Model:", "OLS"},
		{"Method:", "Least Squares"},
		{"No. Observations:", fmt.Sprintf("%d", m.NObs)},
		{"Df Residuals:", fmt.Sprintf("%.0f", m.DFResid)},
		{"Df Model:", fmt.Sprintf("%.0f", m.DFModel)},
		{"", ""},
	}
	right := [][2]string{
		{"R-squared:", formatStat(m.RSquared, 3)},
		{"Adj. R-squared:", formatStat(m.AdjRSquared, 3)},
		{"F-statistic:", formatStat(m.FStatistic, 4)},
		{"Prob (F-statistic):", formatSci(m.FPValue)},
		{"Log-Likelihood:", formatStat(m.LogLikelihood, 5)},
		{"AIC:", formatSci(m.AIC)},
		{"BIC:", formatSci(m.BIC)},
	}
	for i := range left {
		sb.WriteString(fmt.Sprintf("%-20s%19s   %-20s%16s\n", left[i][0], left[i][1], right[i][0], right[i][1]))
	}
	sb.WriteString(double)

	nameWidth := 16
	for _, c := range m.Coefficients {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}
	sb.WriteString(fmt.Sprintf("%-*s %10s %10s %10s %10s %10s %10s\n",
		nameWidth, "", "coef", "std err", "t", "P>|t|", "[0.025", "0.975]"))
	sb.WriteString(single)
	for _, c := range m.Coefficients {
		sb.WriteString(fmt.Sprintf("%-*s %10s %10s %10s %10s %10s %10s\n",
			nameWidth, c.Name,
			formatCoef(c.Estimate), formatCoef(c.StdErr), formatFixed(c.T, 3),
			formatFixed(c.P, 3), formatCoef(c.Lower), formatCoef(c.Upper)))
	}
	sb.WriteString(double)

	diag := [][4]string{
		{"Durbin-Watson:", formatFixed(m.DurbinWatson, 3), "Jarque-Bera (JB):", formatStat(m.JarqueBera, 3)},
		{"Skew:", formatFixed(m.Skew, 3), "Prob(JB):", formatSci(m.JBPValue)},
		{"Kurtosis:", formatFixed(m.Kurtosis, 3), "Cond. No.", formatSci(m.CondNo)},
	}
	for _, d := range diag {
		sb.WriteString(fmt.Sprintf("%-20s%19s   %-20s%16s\n", d[0], d[1], d[2], d[3]))
	}
	sb.WriteString(strings.Repeat("=", summaryWidth))

	return sb.String()
}

func formatFixed(v float64, prec int) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "inf"
		}
		return "-inf"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

// formatStat prints up to prec significant digits, switching to exponent form for large values.
func formatStat(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFixed(v, 0)
	}
	return fmt.Sprintf("%.*g", prec, v)
}

func formatSci(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFixed(v, 0)
	}
	return fmt.Sprintf("%.3e", v)
}

func formatCoef(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFixed(v, 0)
	}
	if a := math.Abs(v); a != 0 && (a >= 1e6 || a < 1e-3) {
		return fmt.Sprintf("%.3e", v)
	}
	return fmt.Sprintf("%.4f", v)
}
