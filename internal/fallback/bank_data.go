package fallback

import "quiz-terminal/internal/domain"

type entry struct {
	q       string
	options [4]string
	correct int
}

var defaultPools = map[domain.Category][]entry{
	domain.Programming: {
		{"¿Qué lenguaje de programación es conocido por su uso en desarrollo web y tiene tipado estático opcional?", [4]string{"Java", "Python", "TypeScript", "C++"}, 2},
		{"¿Cuál de estos es un framework de JavaScript para frontend?", [4]string{"Django", "React", "Laravel", "Spring"}, 1},
		{"¿Qué significa \"API\" en programación?", [4]string{"Application Programming Interface", "Advanced Programming Integration", "Automated Program Instruction", "Application Process Integration"}, 0},
		{"¿Cuál es el paradigma de programación principal de Python?", [4]string{"Funcional", "Orientado a objetos", "Multiparadigma", "Declarativo"}, 2},
		{"¿Qué comando se usa para instalar paquetes en Node.js?", [4]string{"pip install", "npm install", "apt install", "brew install"}, 1},
		{"¿Cuál es la complejidad temporal del algoritmo quicksort en el caso promedio?", [4]string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"}, 1},
		{"¿Qué significa \"SQL\" en bases de datos?", [4]string{"Structured Query Language", "Simple Query Language", "System Query Language", "Standard Quality Language"}, 0},
		{"¿Cuál de estos NO es un patrón de diseño?", [4]string{"Singleton", "Observer", "Recursion", "Factory"}, 2},
		{"¿Qué es Git en programación?", [4]string{"Un lenguaje de programación", "Un sistema de control de versiones", "Un framework web", "Un editor de código"}, 1},
		{"¿Cuál es la diferencia principal entre \"==\" y \"===\" en JavaScript?", [4]string{"No hay diferencia", "=== compara tipo y valor, == solo valor", "== compara tipo y valor, === solo valor", "Solo se puede usar === en funciones"}, 1},
	},
	domain.History: {
		{"¿En qué año comenzó la Segunda Guerra Mundial?", [4]string{"1935", "1939", "1941", "1945"}, 1},
		{"¿Quién fue el primer emperador de Roma?", [4]string{"Julio César", "Augusto", "Nerón", "Trajano"}, 1},
		{"¿En qué año cayó el Muro de Berlín?", [4]string{"1987", "1989", "1991", "1993"}, 1},
		{"¿Qué imperio construyó Machu Picchu?", [4]string{"Azteca", "Maya", "Inca", "Olmeca"}, 2},
		{"¿En qué año llegó Cristóbal Colón a América?", [4]string{"1490", "1492", "1494", "1498"}, 1},
		{"¿Quién fue el líder de la Revolución Rusa de 1917?", [4]string{"Stalin", "Trotsky", "Lenin", "Kerensky"}, 2},
		{"¿En qué siglo vivió Napoleón Bonaparte?", [4]string{"XVII", "XVIII", "XIX", "XX"}, 2},
		{"¿Qué civilización antigua construyó las pirámides de Giza?", [4]string{"Babilónica", "Egipcia", "Griega", "Romana"}, 1},
		{"¿En qué año se firmó la Declaración de Independencia de Estados Unidos?", [4]string{"1774", "1775", "1776", "1777"}, 2},
		{"¿Quién fue conocido como el \"Rey Sol\"?", [4]string{"Luis XIII", "Luis XIV", "Luis XV", "Luis XVI"}, 1},
	},
	domain.Science: {
		{"¿Cuál es el elemento químico más abundante en el universo?", [4]string{"Oxígeno", "Carbono", "Hidrógeno", "Helio"}, 2},
		{"¿Cuántos huesos tiene el cuerpo humano adulto?", [4]string{"198", "206", "214", "220"}, 1},
		{"¿Cuál es la velocidad de la luz en el vacío?", [4]string{"299,792,458 m/s", "300,000,000 m/s", "299,000,000 m/s", "301,000,000 m/s"}, 0},
		{"¿Cuál es la fórmula química del agua?", [4]string{"H2O", "CO2", "NaCl", "CH4"}, 0},
		{"¿Qué planeta es conocido como el \"planeta rojo\"?", [4]string{"Venus", "Júpiter", "Marte", "Saturno"}, 2},
		{"¿Cuál es la unidad básica de la herencia genética?", [4]string{"Cromosoma", "Gen", "ADN", "ARN"}, 1},
		{"¿Quién propuso la teoría de la relatividad?", [4]string{"Newton", "Einstein", "Darwin", "Galileo"}, 1},
		{"¿Cuál es el órgano más grande del cuerpo humano?", [4]string{"Hígado", "Cerebro", "Pulmones", "Piel"}, 3},
		{"¿Qué proceso utilizan las plantas para convertir luz solar en energía?", [4]string{"Respiración", "Fotosíntesis", "Digestión", "Fermentación"}, 1},
		{"¿Cuál es el símbolo químico del oro?", [4]string{"Go", "Au", "Or", "Ag"}, 1},
	},
	domain.Geography: {
		{"¿Cuál es el país más grande del mundo por área territorial?", [4]string{"China", "Estados Unidos", "Canadá", "Rusia"}, 3},
		{"¿Cuál es el río más largo del mundo?", [4]string{"Amazonas", "Nilo", "Yangtsé", "Misisipi"}, 1},
		{"¿En qué continente está ubicado Machu Picchu?", [4]string{"Asia", "África", "América del Sur", "Europa"}, 2},
		{"¿Cuál es la capital de Australia?", [4]string{"Sydney", "Melbourne", "Canberra", "Perth"}, 2},
		{"¿Cuál es el monte más alto del mundo?", [4]string{"K2", "Everest", "Kangchenjunga", "Lhotse"}, 1},
		{"¿En qué país se encuentra la región de Transilvania?", [4]string{"Hungría", "Bulgaria", "Rumania", "Serbia"}, 2},
		{"¿Cuál es el desierto más grande del mundo?", [4]string{"Sahara", "Gobi", "Kalahari", "Antártida"}, 3},
		{"¿Qué océano separa América de Europa?", [4]string{"Pacífico", "Índico", "Atlántico", "Ártico"}, 2},
		{"¿Cuál es la capital de Japón?", [4]string{"Osaka", "Kioto", "Tokio", "Nagoya"}, 2},
		{"¿En qué continente se encuentra el lago Baikal?", [4]string{"Europa", "Asia", "América del Norte", "África"}, 1},
	},
	domain.Art: {
		{"¿Quién pintó \"La noche estrellada\"?", [4]string{"Pablo Picasso", "Vincent van Gogh", "Leonardo da Vinci", "Claude Monet"}, 1},
		{"¿En qué museo se encuentra la Mona Lisa?", [4]string{"Museo del Prado", "Louvre", "Museo Británico", "MoMA"}, 1},
		{"¿Cuál es el estilo artístico de Salvador Dalí?", [4]string{"Impresionismo", "Cubismo", "Surrealismo", "Expresionismo"}, 2},
		{"¿Quién esculpió \"El David\"?", [4]string{"Donatello", "Miguel Ángel", "Bernini", "Rodin"}, 1},
		{"¿En qué siglo vivió Leonardo da Vinci?", [4]string{"XIV", "XV", "XVI", "XVII"}, 2},
		{"¿Cuál es la técnica de pintura que usa puntos de color?", [4]string{"Impresionismo", "Cubismo", "Puntillismo", "Fauvismo"}, 2},
		{"¿Quién pintó \"Guernica\"?", [4]string{"Salvador Dalí", "Pablo Picasso", "Joan Miró", "Francisco Goya"}, 1},
		{"¿En qué ciudad se encuentra la Capilla Sixtina?", [4]string{"Florencia", "Venecia", "Milán", "Ciudad del Vaticano"}, 3},
		{"¿Quién pintó \"Las Meninas\"?", [4]string{"El Greco", "Velázquez", "Goya", "Murillo"}, 1},
		{"¿Cuál es el movimiento artístico de Claude Monet?", [4]string{"Realismo", "Impresionismo", "Romanticismo", "Barroco"}, 1},
	},
	domain.Sports: {
		{"¿En qué deporte se utiliza un disco (puck)?", [4]string{"Hockey sobre hielo", "Golf", "Tenis", "Fútbol"}, 0},
		{"¿Cada cuántos años se celebran los Juegos Olímpicos?", [4]string{"2 años", "3 años", "4 años", "5 años"}, 2},
		{"¿Cuál es el único país que ha participado en todas las Copas del Mundo de fútbol?", [4]string{"Argentina", "Brasil", "Alemania", "Italia"}, 1},
		{"¿Cuántos jugadores hay en un equipo de baloncesto en la cancha?", [4]string{"4", "5", "6", "7"}, 1},
		{"¿En qué deporte se compite por la Copa Davis?", [4]string{"Golf", "Tenis", "Fútbol", "Cricket"}, 1},
		{"¿Cuál es la distancia de un maratón?", [4]string{"40 km", "42.195 km", "45 km", "50 km"}, 1},
		{"¿En qué deporte se utiliza una raqueta y una pelota amarilla?", [4]string{"Badminton", "Squash", "Tenis", "Ping pong"}, 2},
		{"¿Cuántos sets se necesitan ganar para ganar un partido de tenis masculino en Grand Slam?", [4]string{"2", "3", "4", "5"}, 1},
		{"¿En qué año se celebraron los primeros Juegos Olímpicos modernos?", [4]string{"1892", "1896", "1900", "1904"}, 1},
		{"¿Cuál es el máximo número de jugadores en un equipo de fútbol americano en el campo?", [4]string{"9", "10", "11", "12"}, 2},
	},
	domain.Technology: {
		{"¿Quién fundó Microsoft?", [4]string{"Steve Jobs", "Bill Gates", "Mark Zuckerberg", "Elon Musk"}, 1},
		{"¿En qué año se lanzó el primer iPhone?", [4]string{"2005", "2006", "2007", "2008"}, 2},
		{"¿Qué significa \"WWW\"?", [4]string{"World Wide Web", "World Web Wide", "Wide World Web", "Web World Wide"}, 0},
		{"¿Cuál fue la primera red social masiva?", [4]string{"Facebook", "MySpace", "Friendster", "LinkedIn"}, 2},
		{"¿Qué empresa desarrolló el sistema operativo Android?", [4]string{"Apple", "Microsoft", "Google", "Samsung"}, 2},
		{"¿En qué año se fundó YouTube?", [4]string{"2003", "2004", "2005", "2006"}, 2},
		{"¿Qué significa \"CPU\" en informática?", [4]string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"}, 0},
		{"¿Quién fundó Tesla Motors?", [4]string{"Bill Gates", "Steve Jobs", "Elon Musk", "Mark Zuckerberg"}, 2},
		{"¿Qué lenguaje de programación desarrolló Guido van Rossum?", [4]string{"Java", "Python", "C++", "JavaScript"}, 1},
		{"¿En qué año se fundó Google?", [4]string{"1996", "1998", "2000", "2002"}, 1},
	},
	domain.Music: {
		{"¿Qué instrumento tocaba principalmente Jimi Hendrix?", [4]string{"Batería", "Bajo", "Piano", "Guitarra"}, 3},
		{"¿Cuántas sinfonías compuso Beethoven?", [4]string{"7", "8", "9", "10"}, 2},
		{"¿Qué banda británica cantó \"Bohemian Rhapsody\"?", [4]string{"The Beatles", "Queen", "Led Zeppelin", "The Rolling Stones"}, 1},
		{"¿De qué país es originario el tango?", [4]string{"Brasil", "Argentina", "Uruguay", "Chile"}, 1},
		{"¿Cuántas cuerdas tiene una guitarra estándar?", [4]string{"4", "5", "6", "7"}, 2},
		{"¿Quién compuso \"El lago de los cisnes\"?", [4]string{"Mozart", "Chopin", "Tchaikovsky", "Bach"}, 2},
		{"¿Qué género musical popularizó Bob Marley?", [4]string{"Jazz", "Blues", "Reggae", "Rock"}, 2},
		{"¿Cuál es el nombre real de Elton John?", [4]string{"Reginald Dwight", "David Jones", "George O'Dowd", "Robert Plant"}, 0},
		{"¿En qué década surgió el movimiento punk?", [4]string{"1960s", "1970s", "1980s", "1990s"}, 1},
		{"¿Qué instrumento es conocido como \"el rey de los instrumentos\"?", [4]string{"Piano", "Violín", "Órgano", "Trompeta"}, 2},
	},
	domain.Cinema: {
		{"¿Quién dirigió la película \"El Padrino\"?", [4]string{"Martin Scorsese", "Steven Spielberg", "Francis Ford Coppola", "Quentin Tarantino"}, 2},
		{"¿En qué año se estrenó \"Titanic\"?", [4]string{"1995", "1997", "1999", "2001"}, 1},
		{"¿Cuál fue la primera película animada de Disney?", [4]string{"Blancanieves", "Bambi", "Pinocho", "Cenicienta"}, 0},
		{"¿Qué actor interpretó a Jack Sparrow?", [4]string{"Orlando Bloom", "Johnny Depp", "Brad Pitt", "Leonardo DiCaprio"}, 1},
		{"¿Cuál es la película más taquillera de todos los tiempos (sin ajustar por inflación)?", [4]string{"Titanic", "Avatar", "Avengers: Endgame", "Star Wars"}, 1},
		{"¿En qué película aparece la frase \"Que la fuerza te acompañe\"?", [4]string{"Star Trek", "Star Wars", "Guardians of the Galaxy", "Matrix"}, 1},
		{"¿Quién dirigió \"Pulp Fiction\"?", [4]string{"Martin Scorsese", "Quentin Tarantino", "Christopher Nolan", "Tim Burton"}, 1},
		{"¿En qué película Tom Hanks dice \"La vida es como una caja de chocolates\"?", [4]string{"Cast Away", "Forrest Gump", "Philadelphia", "Big"}, 1},
		{"¿En qué año se estrenó la primera película de la saga \"Matrix\"?", [4]string{"1997", "1998", "1999", "2000"}, 2},
		{"¿Qué director es conocido por películas como \"Inception\" y \"The Dark Knight\"?", [4]string{"Steven Spielberg", "Christopher Nolan", "Ridley Scott", "James Cameron"}, 1},
	},
	domain.Literature: {
		{"¿Quién escribió \"Cien años de soledad\"?", [4]string{"Jorge Luis Borges", "Gabriel García Márquez", "Mario Vargas Llosa", "Julio Cortázar"}, 1},
		{"¿Cuál es la primera novela de la saga de Harry Potter?", [4]string{"La Cámara Secreta", "El Prisionero de Azkaban", "La Piedra Filosofal", "El Cáliz de Fuego"}, 2},
		{"¿Quién escribió \"1984\"?", [4]string{"Aldous Huxley", "George Orwell", "Ray Bradbury", "Isaac Asimov"}, 1},
		{"¿En qué país nació William Shakespeare?", [4]string{"Francia", "España", "Inglaterra", "Italia"}, 2},
		{"¿Quién escribió \"Don Quijote de la Mancha\"?", [4]string{"Miguel de Cervantes", "Lope de Vega", "Federico García Lorca", "Antonio Machado"}, 0},
		{"¿Cuál es el primer libro de \"El Señor de los Anillos\"?", [4]string{"Las Dos Torres", "El Retorno del Rey", "La Comunidad del Anillo", "El Hobbit"}, 2},
		{"¿Quién escribió \"Orgullo y prejuicio\"?", [4]string{"Charlotte Brontë", "Emily Brontë", "Jane Austen", "Virginia Woolf"}, 2},
		{"¿En qué siglo vivió Miguel de Cervantes?", [4]string{"XV", "XVI", "XVII", "XVIII"}, 1},
		{"¿Quién escribió \"El gran Gatsby\"?", [4]string{"Ernest Hemingway", "F. Scott Fitzgerald", "John Steinbeck", "William Faulkner"}, 1},
		{"¿Cuál es la obra más famosa de Edgar Allan Poe?", [4]string{"El cuervo", "El gato negro", "La caída de la Casa Usher", "Ligeia"}, 0},
	},
}
