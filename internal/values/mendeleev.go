package values

// mendeleevNumbers is Pettifor's chemical scale. Elements without an
// assigned number (Z >= 104) carry 0 and are drawn with a faded label.
var mendeleevNumbers = Mapping{
	"He": 1, "Ne": 2, "Ar": 3, "Kr": 4, "Xe": 5, "Rn": 6,
	"Fr": 7, "Cs": 8, "Rb": 9, "K": 10, "Na": 11, "Li": 12,
	"Ra": 13, "Ba": 14, "Sr": 15, "Ca": 16,
	"Yb": 17, "Eu": 18, "Y": 19, "Sc": 20,
	"Lu": 21, "Tm": 22, "Er": 23, "Ho": 24, "Dy": 25, "Tb": 26, "Gd": 27,
	"Sm": 28, "Pm": 29, "Nd": 30, "Pr": 31, "Ce": 32, "La": 33,
	"Lr": 34, "No": 35, "Md": 36, "Fm": 37, "Es": 38, "Cf": 39, "Bk": 40,
	"Cm": 41, "Am": 42, "Pu": 43, "Np": 44, "U": 45, "Pa": 46, "Th": 47, "Ac": 48,
	"Zr": 49, "Hf": 50, "Ti": 51, "Nb": 52, "Ta": 53, "V": 54,
	"Mo": 55, "W": 56, "Cr": 57, "Tc": 58, "Re": 59, "Mn": 60,
	"Fe": 61, "Os": 62, "Ru": 63, "Co": 64, "Ir": 65, "Rh": 66,
	"Ni": 67, "Pt": 68, "Pd": 69, "Au": 70, "Ag": 71, "Cu": 72,
	"Mg": 73, "Hg": 74, "Cd": 75, "Zn": 76, "Be": 77,
	"Tl": 78, "In": 79, "Al": 80, "Ga": 81,
	"Pb": 82, "Sn": 83, "Ge": 84, "Si": 85, "B": 86,
	"Bi": 87, "Sb": 88, "As": 89, "P": 90,
	"Po": 91, "Te": 92, "Se": 93, "S": 94, "C": 95,
	"At": 96, "I": 97, "Br": 98, "Cl": 99, "N": 100, "O": 101, "F": 102, "H": 103,
	"Rf": 0, "Db": 0, "Sg": 0, "Bh": 0, "Hs": 0, "Mt": 0, "Ds": 0, "Rg": 0,
	"Cn": 0, "Nh": 0, "Fl": 0, "Mc": 0, "Lv": 0, "Ts": 0, "Og": 0,
}
