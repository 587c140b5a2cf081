package elements

// periodicTableJSON holds all 118 elements with their position in the
// classic layout. Lanthanides and actinides sit on rows 9 and 10, leaving
// row 8 empty as the visual gap.
const periodicTableJSON = `
{
  "elements": [
    {"name": "Hydrogen", "symbol": "H", "number": 1, "atomic_mass": 1.008, "category": "diatomic nonmetal", "col": 1, "row": 1},
    {"name": "Helium", "symbol": "He", "number": 2, "atomic_mass": 4.002602, "category": "noble gas", "col": 18, "row": 1},
    {"name": "Lithium", "symbol": "Li", "number": 3, "atomic_mass": 6.94, "category": "alkali metal", "col": 1, "row": 2},
    {"name": "Beryllium", "symbol": "Be", "number": 4, "atomic_mass": 9.0121831, "category": "alkaline earth metal", "col": 2, "row": 2},
    {"name": "Boron", "symbol": "B", "number": 5, "atomic_mass": 10.81, "category": "metalloid", "col": 13, "row": 2},
    {"name": "Carbon", "symbol": "C", "number": 6, "atomic_mass": 12.011, "category": "polyatomic nonmetal", "col": 14, "row": 2},
    {"name": "Nitrogen", "symbol": "N", "number": 7, "atomic_mass": 14.007, "category": "diatomic nonmetal", "col": 15, "row": 2},
    {"name": "Oxygen", "symbol": "O", "number": 8, "atomic_mass": 15.999, "category": "diatomic nonmetal", "col": 16, "row": 2},
    {"name": "Fluorine", "symbol": "F", "number": 9, "atomic_mass": 18.998403163, "category": "diatomic nonmetal", "col": 17, "row": 2},
    {"name": "Neon", "symbol": "Ne", "number": 10, "atomic_mass": 20.1797, "category": "noble gas", "col": 18, "row": 2},
    {"name": "Sodium", "symbol": "Na", "number": 11, "atomic_mass": 22.98976928, "category": "alkali metal", "col": 1, "row": 3},
    {"name": "Magnesium", "symbol": "Mg", "number": 12, "atomic_mass": 24.305, "category": "alkaline earth metal", "col": 2, "row": 3},
    {"name": "Aluminium", "symbol": "Al", "number": 13, "atomic_mass": 26.9815385, "category": "post-transition metal", "col": 13, "row": 3},
    {"name": "Silicon", "symbol": "Si", "number": 14, "atomic_mass": 28.085, "category": "metalloid", "col": 14, "row": 3},
    {"name": "Phosphorus", "symbol": "P", "number": 15, "atomic_mass": 30.973762, "category": "polyatomic nonmetal", "col": 15, "row": 3},
    {"name": "Sulfur", "symbol": "S", "number": 16, "atomic_mass": 32.06, "category": "polyatomic nonmetal", "col": 16, "row": 3},
    {"name": "Chlorine", "symbol": "Cl", "number": 17, "atomic_mass": 35.45, "category": "diatomic nonmetal", "col": 17, "row": 3},
    {"name": "Argon", "symbol": "Ar", "number": 18, "atomic_mass": 39.948, "category": "noble gas", "col": 18, "row": 3},
    {"name": "Potassium", "symbol": "K", "number": 19, "atomic_mass": 39.0983, "category": "alkali metal", "col": 1, "row": 4},
    {"name": "Calcium", "symbol": "Ca", "number": 20, "atomic_mass": 40.078, "category": "alkaline earth metal", "col": 2, "row": 4},
    {"name": "Scandium", "symbol": "Sc", "number": 21, "atomic_mass": 44.955908, "category": "transition metal", "col": 3, "row": 4},
    {"name": "Titanium", "symbol": "Ti", "number": 22, "atomic_mass": 47.867, "category": "transition metal", "col": 4, "row": 4},
    {"name": "Vanadium", "symbol": "V", "number": 23, "atomic_mass": 50.9415, "category": "transition metal", "col": 5, "row": 4},
    {"name": "Chromium", "symbol": "Cr", "number": 24, "atomic_mass": 51.9961, "category": "transition metal", "col": 6, "row": 4},
    {"name": "Manganese", "symbol": "Mn", "number": 25, "atomic_mass": 54.938044, "category": "transition metal", "col": 7, "row": 4},
    {"name": "Iron", "symbol": "Fe", "number": 26, "atomic_mass": 55.845, "category": "transition metal", "col": 8, "row": 4},
    {"name": "Cobalt", "symbol": "Co", "number": 27, "atomic_mass": 58.933194, "category": "transition metal", "col": 9, "row": 4},
    {"name": "Nickel", "symbol": "Ni", "number": 28, "atomic_mass": 58.6934, "category": "transition metal", "col": 10, "row": 4},
    {"name": "Copper", "symbol": "Cu", "number": 29, "atomic_mass": 63.546, "category": "transition metal", "col": 11, "row": 4},
    {"name": "Zinc", "symbol": "Zn", "number": 30, "atomic_mass": 65.38, "category": "transition metal", "col": 12, "row": 4},
    {"name": "Gallium", "symbol": "Ga", "number": 31, "atomic_mass": 69.723, "category": "post-transition metal", "col": 13, "row": 4},
    {"name": "Germanium", "symbol": "Ge", "number": 32, "atomic_mass": 72.63, "category": "metalloid", "col": 14, "row": 4},
    {"name": "Arsenic", "symbol": "As", "number": 33, "atomic_mass": 74.921595, "category": "metalloid", "col": 15, "row": 4},
    {"name": "Selenium", "symbol": "Se", "number": 34, "atomic_mass": 78.971, "category": "polyatomic nonmetal", "col": 16, "row": 4},
    {"name": "Bromine", "symbol": "Br", "number": 35, "atomic_mass": 79.904, "category": "diatomic nonmetal", "col": 17, "row": 4},
    {"name": "Krypton", "symbol": "Kr", "number": 36, "atomic_mass": 83.798, "category": "noble gas", "col": 18, "row": 4},
    {"name": "Rubidium", "symbol": "Rb", "number": 37, "atomic_mass": 85.4678, "category": "alkali metal", "col": 1, "row": 5},
    {"name": "Strontium", "symbol": "Sr", "number": 38, "atomic_mass": 87.62, "category": "alkaline earth metal", "col": 2, "row": 5},
    {"name": "Yttrium", "symbol": "Y", "number": 39, "atomic_mass": 88.90584, "category": "transition metal", "col": 3, "row": 5},
    {"name": "Zirconium", "symbol": "Zr", "number": 40, "atomic_mass": 91.224, "category": "transition metal", "col": 4, "row": 5},
    {"name": "Niobium", "symbol": "Nb", "number": 41, "atomic_mass": 92.90637, "category": "transition metal", "col": 5, "row": 5},
    {"name": "Molybdenum", "symbol": "Mo", "number": 42, "atomic_mass": 95.95, "category": "transition metal", "col": 6, "row": 5},
    {"name": "Technetium", "symbol": "Tc", "number": 43, "atomic_mass": 98, "category": "transition metal", "col": 7, "row": 5},
    {"name": "Ruthenium", "symbol": "Ru", "number": 44, "atomic_mass": 101.07, "category": "transition metal", "col": 8, "row": 5},
    {"name": "Rhodium", "symbol": "Rh", "number": 45, "atomic_mass": 102.9055, "category": "transition metal", "col": 9, "row": 5},
    {"name": "Palladium", "symbol": "Pd", "number": 46, "atomic_mass": 106.42, "category": "transition metal", "col": 10, "row": 5},
    {"name": "Silver", "symbol": "Ag", "number": 47, "atomic_mass": 107.8682, "category": "transition metal", "col": 11, "row": 5},
    {"name": "Cadmium", "symbol": "Cd", "number": 48, "atomic_mass": 112.414, "category": "transition metal", "col": 12, "row": 5},
    {"name": "Indium", "symbol": "In", "number": 49, "atomic_mass": 114.818, "category": "post-transition metal", "col": 13, "row": 5},
    {"name": "Tin", "symbol": "Sn", "number": 50, "atomic_mass": 118.71, "category": "post-transition metal", "col": 14, "row": 5},
    {"name": "Antimony", "symbol": "Sb", "number": 51, "atomic_mass": 121.76, "category": "metalloid", "col": 15, "row": 5},
    {"name": "Tellurium", "symbol": "Te", "number": 52, "atomic_mass": 127.6, "category": "metalloid", "col": 16, "row": 5},
    {"name": "Iodine", "symbol": "I", "number": 53, "atomic_mass": 126.90447, "category": "diatomic nonmetal", "col": 17, "row": 5},
    {"name": "Xenon", "symbol": "Xe", "number": 54, "atomic_mass": 131.293, "category": "noble gas", "col": 18, "row": 5},
    {"name": "Caesium", "symbol": "Cs", "number": 55, "atomic_mass": 132.90545196, "category": "alkali metal", "col": 1, "row": 6},
    {"name": "Barium", "symbol": "Ba", "number": 56, "atomic_mass": 137.327, "category": "alkaline earth metal", "col": 2, "row": 6},
    {"name": "Lanthanum", "symbol": "La", "number": 57, "atomic_mass": 138.90547, "category": "lanthanide", "col": 3, "row": 9},
    {"name": "Cerium", "symbol": "Ce", "number": 58, "atomic_mass": 140.116, "category": "lanthanide", "col": 4, "row": 9},
    {"name": "Praseodymium", "symbol": "Pr", "number": 59, "atomic_mass": 140.90766, "category": "lanthanide", "col": 5, "row": 9},
    {"name": "Neodymium", "symbol": "Nd", "number": 60, "atomic_mass": 144.242, "category": "lanthanide", "col": 6, "row": 9},
    {"name": "Promethium", "symbol": "Pm", "number": 61, "atomic_mass": 145, "category": "lanthanide", "col": 7, "row": 9},
    {"name": "Samarium", "symbol": "Sm", "number": 62, "atomic_mass": 150.36, "category": "lanthanide", "col": 8, "row": 9},
    {"name": "Europium", "symbol": "Eu", "number": 63, "atomic_mass": 151.964, "category": "lanthanide", "col": 9, "row": 9},
    {"name": "Gadolinium", "symbol": "Gd", "number": 64, "atomic_mass": 157.25, "category": "lanthanide", "col": 10, "row": 9},
    {"name": "Terbium", "symbol": "Tb", "number": 65, "atomic_mass": 158.92535, "category": "lanthanide", "col": 11, "row": 9},
    {"name": "Dysprosium", "symbol": "Dy", "number": 66, "atomic_mass": 162.5, "category": "lanthanide", "col": 12, "row": 9},
    {"name": "Holmium", "symbol": "Ho", "number": 67, "atomic_mass": 164.93033, "category": "lanthanide", "col": 13, "row": 9},
    {"name": "Erbium", "symbol": "Er", "number": 68, "atomic_mass": 167.259, "category": "lanthanide", "col": 14, "row": 9},
    {"name": "Thulium", "symbol": "Tm", "number": 69, "atomic_mass": 168.93422, "category": "lanthanide", "col": 15, "row": 9},
    {"name": "Ytterbium", "symbol": "Yb", "number": 70, "atomic_mass": 173.045, "category": "lanthanide", "col": 16, "row": 9},
    {"name": "Lutetium", "symbol": "Lu", "number": 71, "atomic_mass": 174.9668, "category": "lanthanide", "col": 17, "row": 9},
    {"name": "Hafnium", "symbol": "Hf", "number": 72, "atomic_mass": 178.49, "category": "transition metal", "col": 4, "row": 6},
    {"name": "Tantalum", "symbol": "Ta", "number": 73, "atomic_mass": 180.94788, "category": "transition metal", "col": 5, "row": 6},
    {"name": "Tungsten", "symbol": "W", "number": 74, "atomic_mass": 183.84, "category": "transition metal", "col": 6, "row": 6},
    {"name": "Rhenium", "symbol": "Re", "number": 75, "atomic_mass": 186.207, "category": "transition metal", "col": 7, "row": 6},
    {"name": "Osmium", "symbol": "Os", "number": 76, "atomic_mass": 190.23, "category": "transition metal", "col": 8, "row": 6},
    {"name": "Iridium", "symbol": "Ir", "number": 77, "atomic_mass": 192.217, "category": "transition metal", "col": 9, "row": 6},
    {"name": "Platinum", "symbol": "Pt", "number": 78, "atomic_mass": 195.084, "category": "transition metal", "col": 10, "row": 6},
    {"name": "Gold", "symbol": "Au", "number": 79, "atomic_mass": 196.966569, "category": "transition metal", "col": 11, "row": 6},
    {"name": "Mercury", "symbol": "Hg", "number": 80, "atomic_mass": 200.592, "category": "transition metal", "col": 12, "row": 6},
    {"name": "Thallium", "symbol": "Tl", "number": 81, "atomic_mass": 204.38, "category": "post-transition metal", "col": 13, "row": 6},
    {"name": "Lead", "symbol": "Pb", "number": 82, "atomic_mass": 207.2, "category": "post-transition metal", "col": 14, "row": 6},
    {"name": "Bismuth", "symbol": "Bi", "number": 83, "atomic_mass": 208.9804, "category": "post-transition metal", "col": 15, "row": 6},
    {"name": "Polonium", "symbol": "Po", "number": 84, "atomic_mass": 209, "category": "post-transition metal", "col": 16, "row": 6},
    {"name": "Astatine", "symbol": "At", "number": 85, "atomic_mass": 210, "category": "metalloid", "col": 17, "row": 6},
    {"name": "Radon", "symbol": "Rn", "number": 86, "atomic_mass": 222, "category": "noble gas", "col": 18, "row": 6},
    {"name": "Francium", "symbol": "Fr", "number": 87, "atomic_mass": 223, "category": "alkali metal", "col": 1, "row": 7},
    {"name": "Radium", "symbol": "Ra", "number": 88, "atomic_mass": 226, "category": "alkaline earth metal", "col": 2, "row": 7},
    {"name": "Actinium", "symbol": "Ac", "number": 89, "atomic_mass": 227, "category": "actinide", "col": 3, "row": 10},
    {"name": "Thorium", "symbol": "Th", "number": 90, "atomic_mass": 232.0377, "category": "actinide", "col": 4, "row": 10},
    {"name": "Protactinium", "symbol": "Pa", "number": 91, "atomic_mass": 231.03588, "category": "actinide", "col": 5, "row": 10},
    {"name": "Uranium", "symbol": "U", "number": 92, "atomic_mass": 238.02891, "category": "actinide", "col": 6, "row": 10},
    {"name": "Neptunium", "symbol": "Np", "number": 93, "atomic_mass": 237, "category": "actinide", "col": 7, "row": 10},
    {"name": "Plutonium", "symbol": "Pu", "number": 94, "atomic_mass": 244, "category": "actinide", "col": 8, "row": 10},
    {"name": "Americium", "symbol": "Am", "number": 95, "atomic_mass": 243, "category": "actinide", "col": 9, "row": 10},
    {"name": "Curium", "symbol": "Cm", "number": 96, "atomic_mass": 247, "category": "actinide", "col": 10, "row": 10},
    {"name": "Berkelium", "symbol": "Bk", "number": 97, "atomic_mass": 247, "category": "actinide", "col": 11, "row": 10},
    {"name": "Californium", "symbol": "Cf", "number": 98, "atomic_mass": 251, "category": "actinide", "col": 12, "row": 10},
    {"name": "Einsteinium", "symbol": "Es", "number": 99, "atomic_mass": 252, "category": "actinide", "col": 13, "row": 10},
    {"name": "Fermium", "symbol": "Fm", "number": 100, "atomic_mass": 257, "category": "actinide", "col": 14, "row": 10},
    {"name": "Mendelevium", "symbol": "Md", "number": 101, "atomic_mass": 258, "category": "actinide", "col": 15, "row": 10},
    {"name": "Nobelium", "symbol": "No", "number": 102, "atomic_mass": 259, "category": "actinide", "col": 16, "row": 10},
    {"name": "Lawrencium", "symbol": "Lr", "number": 103, "atomic_mass": 266, "category": "actinide", "col": 17, "row": 10},
    {"name": "Rutherfordium", "symbol": "Rf", "number": 104, "atomic_mass": 267, "category": "transition metal", "col": 4, "row": 7},
    {"name": "Dubnium", "symbol": "Db", "number": 105, "atomic_mass": 268, "category": "transition metal", "col": 5, "row": 7},
    {"name": "Seaborgium", "symbol": "Sg", "number": 106, "atomic_mass": 269, "category": "transition metal", "col": 6, "row": 7},
    {"name": "Bohrium", "symbol": "Bh", "number": 107, "atomic_mass": 270, "category": "transition metal", "col": 7, "row": 7},
    {"name": "Hassium", "symbol": "Hs", "number": 108, "atomic_mass": 269, "category": "transition metal", "col": 8, "row": 7},
    {"name": "Meitnerium", "symbol": "Mt", "number": 109, "atomic_mass": 278, "category": "unknown", "col": 9, "row": 7},
    {"name": "Darmstadtium", "symbol": "Ds", "number": 110, "atomic_mass": 281, "category": "unknown", "col": 10, "row": 7},
    {"name": "Roentgenium", "symbol": "Rg", "number": 111, "atomic_mass": 282, "category": "unknown", "col": 11, "row": 7},
    {"name": "Copernicium", "symbol": "Cn", "number": 112, "atomic_mass": 285, "category": "transition metal", "col": 12, "row": 7},
    {"name": "Nihonium", "symbol": "Nh", "number": 113, "atomic_mass": 286, "category": "unknown", "col": 13, "row": 7},
    {"name": "Flerovium", "symbol": "Fl", "number": 114, "atomic_mass": 289, "category": "post-transition metal", "col": 14, "row": 7},
    {"name": "Moscovium", "symbol": "Mc", "number": 115, "atomic_mass": 290, "category": "unknown", "col": 15, "row": 7},
    {"name": "Livermorium", "symbol": "Lv", "number": 116, "atomic_mass": 293, "category": "unknown", "col": 16, "row": 7},
    {"name": "Tennessine", "symbol": "Ts", "number": 117, "atomic_mass": 294, "category": "unknown", "col": 17, "row": 7},
    {"name": "Oganesson", "symbol": "Og", "number": 118, "atomic_mass": 294, "category": "unknown", "col": 18, "row": 7}
  ],
  "special": [
    {"label": "57-71", "col": 3, "row": 6},
    {"label": "89-103", "col": 3, "row": 7}
  ]
}
`
