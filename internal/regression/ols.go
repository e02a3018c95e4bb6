package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// InterceptName labels the constant term.
const InterceptName = "Intercept"

// rcond is the relative singular-value cutoff of the pseudo-inverse.
const rcond = 1e-15

// Coefficient is one fitted parameter.
type Coefficient struct {
	Name     string
	Estimate float64
	StdErr   float64
	T        float64
	P        float64
	Lower    float64 // 95% confidence interval
	Upper    float64
}

// Model is an ordinary least squares fit with an intercept.
type Model struct {
	Dependent    string
	NObs         int
	Rank         int
	DFModel      float64
	DFResid      float64
	Coefficients []Coefficient

	RSquared      float64
	AdjRSquared   float64
	FStatistic    float64
	FPValue       float64
	LogLikelihood float64
	AIC           float64
	BIC           float64

	DurbinWatson float64
	JarqueBera   float64
	JBPValue     float64
	Skew         float64
	Kurtosis     float64
	CondNo       float64
}

// Significant returns coefficients with |t| above threshold, intercept excluded.
func (m *Model) Significant(threshold float64) []Coefficient {
	var out []Coefficient
	for _, c := range m.Coefficients {
		if c.Name == InterceptName {
			continue
		}
		if math.Abs(c.T) > threshold {
			out = append(out, c)
		}
	}
	return out
}

// Fit regresses target on predictors plus an intercept.
// The solution uses the SVD pseudo-inverse, so collinear predictors are
// tolerated and reduce the rank. Returns ErrInsufficientObservations when
// the fit leaves no residual degrees of freedom.
func Fit(dependent string, target []float64, predictors []Candidate) (*Model, error) {
	n := len(target)
	k := len(predictors) + 1
	for _, p := range predictors {
		if len(p.Values) != n {
			return nil, fmt.Errorf("%w: predictor %s has %d values, target has %d", ErrDimension, p.Name, len(p.Values), n)
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: %d observations", ErrInsufficientObservations, n)
	}

	x := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, p := range predictors {
			x.Set(i, j+1, p.Values[i])
		}
	}
	y := mat.NewVecDense(n, append([]float64(nil), target...))

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd factorization failed")
	}
	rank := svd.Rank(rcond)
	dfResid := float64(n - rank)
	if dfResid < 1 {
		return nil, fmt.Errorf("%w: %d observations, rank %d", ErrInsufficientObservations, n, rank)
	}

	pinv := pseudoInverse(&svd, rank, k)

	beta := mat.NewVecDense(k, nil)
	beta.MulVec(pinv, y)

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(x, beta)
	resid := make([]float64, n)
	ssr := 0.0
	for i := 0; i < n; i++ {
		resid[i] = target[i] - fitted.AtVec(i)
		ssr += resid[i] * resid[i]
	}

	var cov mat.Dense
	cov.Mul(pinv, pinv.T())
	scale := ssr / dfResid

	m := &Model{
		Dependent: dependent,
		NObs:      n,
		Rank:      rank,
		DFModel:   float64(rank - 1),
		DFResid:   dfResid,
	}

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dfResid}
	tcrit := tdist.Quantile(0.975)
	names := make([]string, 0, k)
	names = append(names, InterceptName)
	for _, p := range predictors {
		names = append(names, p.Name)
	}
	for j, name := range names {
		est := beta.AtVec(j)
		se := math.Sqrt(cov.At(j, j) * scale)
		t := est / se
		m.Coefficients = append(m.Coefficients, Coefficient{
			Name:     name,
			Estimate: est,
			StdErr:   se,
			T:        t,
			P:        2 * tdist.Survival(math.Abs(t)),
			Lower:    est - tcrit*se,
			Upper:    est + tcrit*se,
		})
	}

	mean := stat.Mean(target, nil)
	tss := 0.0
	for _, v := range target {
		tss += (v - mean) * (v - mean)
	}
	m.RSquared = 1 - ssr/tss
	m.AdjRSquared = 1 - float64(n-1)/dfResid*(1-m.RSquared)
	if m.DFModel > 0 {
		m.FStatistic = ((tss - ssr) / m.DFModel) / scale
		m.FPValue = distuv.F{D1: m.DFModel, D2: dfResid}.Survival(m.FStatistic)
	} else {
		m.FStatistic = math.NaN()
		m.FPValue = math.NaN()
	}

	nf := float64(n)
	m.LogLikelihood = -nf / 2 * (math.Log(2*math.Pi) + math.Log(ssr/nf) + 1)
	m.AIC = -2*m.LogLikelihood + 2*(m.DFModel+1)
	m.BIC = -2*m.LogLikelihood + math.Log(nf)*(m.DFModel+1)

	m.DurbinWatson = durbinWatson(resid, ssr)
	m.Skew, m.Kurtosis, m.JarqueBera, m.JBPValue = jarqueBera(resid)
	m.CondNo = svd.Cond()

	return m, nil
}

// pseudoInverse returns V_r Σ_r⁻¹ U_rᵀ keeping the first rank singular values.
func pseudoInverse(svd *mat.SVD, rank, k int) *mat.Dense {
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	n, _ := u.Dims()
	vs := mat.NewDense(k, rank, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < rank; i++ {
			vs.Set(j, i, v.At(j, i)/s[i])
		}
	}

	pinv := mat.NewDense(k, n, nil)
	pinv.Mul(vs, u.Slice(0, n, 0, rank).T())
	return pinv
}

func durbinWatson(resid []float64, ssr float64) float64 {
	if ssr == 0 {
		return math.NaN()
	}
	d := 0.0
	for i := 1; i < len(resid); i++ {
		diff := resid[i] - resid[i-1]
		d += diff * diff
	}
	return d / ssr
}

// jarqueBera returns residual skew, kurtosis (not excess), the JB statistic and its p-value.
func jarqueBera(resid []float64) (skew, kurt, jb, p float64) {
	m2 := stat.Moment(2, resid, nil)
	if m2 == 0 {
		return math.NaN(), math.NaN(), math.NaN(), math.NaN()
	}
	skew = stat.Moment(3, resid, nil) / math.Pow(m2, 1.5)
	kurt = stat.Moment(4, resid, nil) / (m2 * m2)
	n := float64(len(resid))
	jb = n / 6 * (skew*skew + (kurt-3)*(kurt-3)/4)
	p = distuv.ChiSquared{K: 2}.Survival(jb)
	return skew, kurt, jb, p
}
