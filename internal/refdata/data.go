package refdata

// provinces lists the 24 provinces with their cédula region codes.
var provinces = []Province{
	{"01", "Azuay", []string{"Cuenca", "Girón", "Gualaceo", "Nabón", "Paute", "Santa Isabel", "Sigsig"}},
	{"02", "Bolívar", []string{"Guaranda", "Caluma", "Chillanes", "Chimbo", "Echeandía", "San Miguel"}},
	{"03", "Cañar", []string{"Azogues", "Biblián", "Cañar", "La Troncal", "El Tambo"}},
	{"04", "Carchi", []string{"Tulcán", "Bolívar", "Espejo", "Mira", "Montúfar", "San Pedro de Huaca"}},
	{"05", "Cotopaxi", []string{"Latacunga", "La Maná", "Pangua", "Pujilí", "Salcedo", "Saquisilí"}},
	{"06", "Chimborazo", []string{"Riobamba", "Alausí", "Chambo", "Chunchi", "Colta", "Guano"}},
	{"07", "El Oro", []string{"Machala", "Arenillas", "Huaquillas", "Pasaje", "Piñas", "Santa Rosa", "Zaruma"}},
	{"08", "Esmeraldas", []string{"Esmeraldas", "Atacames", "Eloy Alfaro", "Muisne", "Quinindé", "San Lorenzo"}},
	{"09", "Guayas", []string{"Guayaquil", "Daule", "Durán", "Milagro", "Naranjal", "Playas", "Samborondón"}},
	{"10", "Imbabura", []string{"Ibarra", "Antonio Ante", "Cotacachi", "Otavalo", "Pimampiro", "Urcuquí"}},
	{"11", "Loja", []string{"Loja", "Calvas", "Catamayo", "Macará", "Paltas", "Saraguro"}},
	{"12", "Los Ríos", []string{"Babahoyo", "Baba", "Buena Fe", "Quevedo", "Ventanas", "Vinces"}},
	{"13", "Manabí", []string{"Portoviejo", "Chone", "Jipijapa", "Manta", "Montecristi", "Sucre"}},
	{"14", "Morona Santiago", []string{"Macas", "Gualaquiza", "Limón Indanza", "Palora", "Sucúa"}},
	{"15", "Napo", []string{"Tena", "Archidona", "El Chaco", "Quijos", "Carlos Julio Arosemena Tola"}},
	{"16", "Pastaza", []string{"Puyo", "Arajuno", "Mera", "Santa Clara"}},
	{"17", "Pichincha", []string{"Quito", "Cayambe", "Mejía", "Pedro Moncayo", "Rumiñahui", "San Miguel de los Bancos"}},
	{"18", "Tungurahua", []string{"Ambato", "Baños de Agua Santa", "Cevallos", "Patate", "Pelileo", "Píllaro"}},
	{"19", "Zamora Chinchipe", []string{"Zamora", "Chinchipe", "Nangaritza", "Yacuambi", "Yantzaza"}},
	{"20", "Galápagos", []string{"San Cristóbal", "Isabela", "Santa Cruz"}},
	{"21", "Sucumbíos", []string{"Nueva Loja", "Cascales", "Cuyabeno", "Gonzalo Pizarro", "Shushufindi"}},
	{"22", "Orellana", []string{"Francisco de Orellana", "Aguarico", "La Joya de los Sachas", "Loreto"}},
	{"23", "Santo Domingo de los Tsáchilas", []string{"Santo Domingo", "La Concordia"}},
	{"24", "Santa Elena", []string{"Santa Elena", "La Libertad", "Salinas"}},
}

var maleNames = []string{
	"José", "Luis", "Carlos", "Juan", "Jorge", "Miguel", "Diego", "Andrés",
	"Fernando", "Santiago", "Sebastián", "Mateo", "Daniel", "David", "Pablo", "Francisco",
	"Javier", "Ricardo", "Eduardo", "Alejandro", "Gabriel", "Marco", "Patricio", "Fabián",
	"Roberto", "Esteban", "Cristian", "Byron", "Wilson", "Édison", "Galo", "Segundo",
	"Ángel", "Víctor", "Héctor", "Raúl", "Iván", "Julio", "Mauricio", "Nicolás",
}

var femaleNames = []string{
	"María", "Ana", "Gabriela", "Daniela", "Andrea", "Verónica", "Carolina", "Fernanda",
	"Paola", "Lucía", "Valentina", "Camila", "Sofía", "Isabel", "Patricia", "Mónica",
	"Rosa", "Carmen", "Elena", "Diana", "Estefanía", "Jéssica", "Karina", "Lorena",
	"Mercedes", "Natalia", "Pamela", "Silvia", "Ximena", "Johanna", "Gladys", "Inés",
	"Martha", "Nelly", "Beatriz", "Alexandra", "Cristina", "Tania", "Viviana", "Belén",
}

var surnames = []string{
	"García", "Rodríguez", "González", "López", "Martínez", "Pérez", "Sánchez", "Ramírez",
	"Torres", "Flores", "Rivera", "Gómez", "Díaz", "Reyes", "Morales", "Jiménez",
	"Vásquez", "Castro", "Mendoza", "Moreno", "Herrera", "Ortiz", "Ruiz", "Chávez",
	"Guerrero", "Vera", "Zambrano", "Cedeño", "Mora", "Andrade", "Cevallos", "Villacís",
	"Paredes", "Salazar", "Aguirre", "Delgado", "Espinoza", "Bravo", "Carrión", "Chiriboga",
	"Quishpe", "Guamán", "Tixi", "Yánez", "Naranjo", "Benítez", "Cabrera", "Ponce",
}

var professions = []string{
	"Ingeniero Civil", "Ingeniera en Sistemas", "Médico", "Enfermera", "Abogado", "Contadora",
	"Arquitecto", "Docente", "Odontóloga", "Economista", "Psicólogo", "Veterinaria",
	"Administrador de Empresas", "Diseñadora Gráfica", "Periodista", "Agrónomo",
	"Electricista", "Mecánico", "Chef", "Farmacéutica", "Comerciante", "Técnico en Redes",
	"Ingeniero Petrolero", "Auditora", "Bióloga", "Químico", "Fisioterapeuta", "Estudiante",
}

var streetNames = []string{
	"Av. Amazonas", "Av. 10 de Agosto", "Av. 6 de Diciembre", "Av. República del Salvador",
	"Av. Naciones Unidas", "Av. Francisco de Orellana", "Av. 9 de Octubre", "Av. Quito",
	"Av. de las Américas", "Av. Remigio Crespo", "Av. Solano", "Calle Bolívar",
	"Calle Sucre", "Calle García Moreno", "Calle Rocafuerte", "Calle Olmedo",
	"Calle Chile", "Calle Venezuela", "Calle Guayaquil", "Calle Juan Montalvo",
	"Av. Eloy Alfaro", "Av. Shyris", "Av. Colón", "Av. Patria", "Calle Mejía",
}

var companyNames = []string{
	"Andes", "Pacífico", "Cóndor", "Chimborazo", "Cotopaxi", "Galápagos", "Amazonía",
	"Equinoccio", "Volcán", "Litoral", "Sierra", "Oriente", "Quitumbe", "Guayas",
	"Manglar", "Cacao", "Banano", "Tungurahua", "Pichincha", "Austro", "Tsáchila",
}

var companySuffixes = []string{
	"S.A.", "Cía. Ltda.", "S.A.S.", "C.A.", "Corp.",
}

// sectors prefix generated company names.
var sectors = []string{
	"Comercial", "Industrial", "Servicios", "Tecnológica", "Constructora",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "outlook.com", "yahoo.com", "yahoo.es",
	"live.com", "icloud.com", "uio.satnet.net", "hotmail.es",
}

// companyTLDs are appended to company email slugs.
var companyTLDs = []string{
	"com.ec", "ec", "net.ec", "org.ec",
}

// mobilePrefixes are dialed after +593.
var mobilePrefixes = []string{
	"99", "98", "97", "96", "95", "94", "93", "92", "91", "90",
}

// landlinePrefixes maps province codes to their area code after +593.
var landlinePrefixes = map[string][]string{
	"01": {"7"}, "02": {"3"}, "03": {"7"}, "04": {"6"},
	"05": {"3"}, "06": {"3"}, "07": {"7"}, "08": {"6"},
	"09": {"4"}, "10": {"6"}, "11": {"7"}, "12": {"5"},
	"13": {"5"}, "14": {"7"}, "15": {"6"}, "16": {"3"},
	"17": {"2"}, "18": {"3"}, "19": {"7"}, "20": {"5"},
	"21": {"6"}, "22": {"6"}, "23": {"2"}, "24": {"4"},
}
