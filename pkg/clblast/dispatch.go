package clblast

import "github.com/fxnlabs/clblast/pkg/clblast/native"

// routine is one native entry point of a family whose arguments do not depend
// on the element type.
type routine[A any] struct {
	name string
	call func(native.API, native.Call, A) native.Status
}

// family lists a routine at every precision, indexed by precision.
type family[A any] [4]routine[A]

var (
	sumFamily = family[native.ReduceArgs]{
		{"Ssum", native.API.Ssum}, {"Dsum", native.API.Dsum},
		{"Scsum", native.API.Scsum}, {"Dzsum", native.API.Dzsum},
	}
	asumFamily = family[native.ReduceArgs]{
		{"Sasum", native.API.Sasum}, {"Dasum", native.API.Dasum},
		{"Scasum", native.API.Scasum}, {"Dzasum", native.API.Dzasum},
	}
	nrm2Family = family[native.ReduceArgs]{
		{"Snrm2", native.API.Snrm2}, {"Dnrm2", native.API.Dnrm2},
		{"Scnrm2", native.API.Scnrm2}, {"Dznrm2", native.API.Dznrm2},
	}
	amaxFamily = family[native.ReduceArgs]{
		{"iSamax", native.API.Isamax}, {"iDamax", native.API.Idamax},
		{"iCamax", native.API.Icamax}, {"iZamax", native.API.Izamax},
	}
	aminFamily = family[native.ReduceArgs]{
		{"iSamin", native.API.Isamin}, {"iDamin", native.API.Idamin},
		{"iCamin", native.API.Icamin}, {"iZamin", native.API.Izamin},
	}
	maxFamily = family[native.ReduceArgs]{
		{"iSmax", native.API.Ismax}, {"iDmax", native.API.Idmax},
		{"iCmax", native.API.Icmax}, {"iZmax", native.API.Izmax},
	}
	minFamily = family[native.ReduceArgs]{
		{"iSmin", native.API.Ismin}, {"iDmin", native.API.Idmin},
		{"iCmin", native.API.Icmin}, {"iZmin", native.API.Izmin},
	}
	swapFamily = family[native.PairArgs]{
		{"Sswap", native.API.Sswap}, {"Dswap", native.API.Dswap},
		{"Cswap", native.API.Cswap}, {"Zswap", native.API.Zswap},
	}
	copyFamily = family[native.PairArgs]{
		{"Scopy", native.API.Scopy}, {"Dcopy", native.API.Dcopy},
		{"Ccopy", native.API.Ccopy}, {"Zcopy", native.API.Zcopy},
	}
	dotFamily = family[native.DotArgs]{
		{"Sdot", native.API.Sdot}, {"Ddot", native.API.Ddot},
		{"Cdotu", native.API.Cdotu}, {"Zdotu", native.API.Zdotu},
	}
	// Real precisions never reach dotc: DotConjugate only admits complex types.
	dotcFamily = family[native.DotArgs]{
		{}, {},
		{"Cdotc", native.API.Cdotc}, {"Zdotc", native.API.Zdotc},
	}
)

func (f family[A]) of(p precision) routine[A] {
	return f[p]
}

// names of the routines whose scalar argument changes type with precision.
var (
	scalNames = [4]string{"Sscal", "Dscal", "Cscal", "Zscal"}
	axpyNames = [4]string{"Saxpy", "Daxpy", "Caxpy", "Zaxpy"}
	gemmNames = [4]string{"Sgemm", "Dgemm", "Cgemm", "Zgemm"}
	symmNames = [4]string{"Ssymm", "Dsymm", "Csymm", "Zsymm"}
)
