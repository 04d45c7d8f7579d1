package fakedata

var lastNamesMale = []string{
	"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов",
	"Михайлов", "Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев",
	"Семёнов", "Егоров", "Павлов", "Козлов", "Степанов", "Николаев", "Орлов",
	"Андреев", "Макаров", "Никитин", "Захаров", "Зайцев", "Соловьёв", "Борисов",
	"Яковлев", "Григорьев", "Романов", "Воробьёв", "Сергеев", "Кузьмин", "Фролов",
	"Александров", "Дмитриев", "Королёв", "Гусев", "Киселёв", "Ильин", "Максимов",
	"Поляков", "Сорокин", "Виноградов", "Ковалёв", "Белов", "Медведев", "Антонов",
	"Тарасов", "Жуков", "Баранов", "Филиппов", "Комаров", "Давыдов", "Беляев",
	"Герасимов", "Богданов", "Осипов", "Сидоров", "Матвеев", "Титов", "Марков",
	"Миронов", "Крылов", "Куликов", "Карпов", "Власов", "Мельников", "Денисов",
	"Гаврилов", "Тихонов", "Казаков", "Афанасьев", "Данилов", "Савельев", "Тимофеев",
	"Фомин", "Чернов", "Абрамов", "Мартынов", "Ефимов", "Федотов", "Щербаков",
	"Назаров", "Калинин", "Исаев", "Чернышёв", "Быков", "Маслов", "Родионов",
	"Коновалов", "Лазарев", "Воронин", "Климов", "Филатов", "Пономарёв", "Голубев",
	"Кудрявцев", "Прохоров", "Наумов", "Потапов", "Журавлёв", "Овчинников", "Трофимов",
	"Леонов", "Соболев", "Ермаков", "Колесников", "Гончаров", "Емельянов", "Никифоров",
	"Грачёв", "Котов", "Гришин", "Ефремов", "Архипов", "Громов", "Кириллов",
	"Малышев", "Панов", "Моисеев", "Румянцев", "Акимов", "Кондратьев", "Бирюков",
	"Горбунов", "Анисимов", "Ерёмин", "Тихомиров", "Галкин", "Лукьянов", "Михеев",
	"Скворцов", "Юдин", "Белоусов", "Нестеров", "Симонов", "Прокофьев", "Харитонов",
	"Князев", "Цветков", "Левин", "Митрофанов", "Воронов", "Аксёнов", "Софронов",
	"Мальцев", "Логинов", "Горшков", "Савин", "Краснов", "Майоров", "Демидов",
	"Елисеев", "Рыбаков", "Сафонов", "Плотников", "Дёмин", "Хохлов", "Жданов",
	"Щукин", "Юрьев", "Шубин", "Чистяков",
}

var lastNamesFemale = []string{
	"Иванова", "Смирнова", "Кузнецова", "Попова", "Васильева", "Петрова", "Соколова",
	"Михайлова", "Новикова", "Фёдорова", "Морозова", "Волкова", "Алексеева", "Лебедева",
	"Семёнова", "Егорова", "Павлова", "Козлова", "Степанова", "Николаева", "Орлова",
	"Андреева", "Макарова", "Никитина", "Захарова", "Зайцева", "Соловьёва", "Борисова",
	"Яковлева", "Григорьева", "Романова", "Воробьёва", "Сергеева", "Кузьмина", "Фролова",
	"Александрова", "Дмитриева", "Королёва", "Гусева", "Киселёва", "Ильина", "Максимова",
	"Полякова", "Сорокина", "Виноградова", "Ковалёва", "Белова", "Медведева", "Антонова",
	"Тарасова", "Жукова", "Баранова", "Филиппова", "Комарова", "Давыдова", "Беляева",
	"Герасимова", "Богданова", "Осипова", "Сидорова", "Матвеева", "Титова", "Маркова",
	"Миронова", "Крылова", "Куликова", "Карпова", "Власова", "Мельникова", "Денисова",
	"Гаврилова", "Тихонова", "Казакова", "Афанасьева", "Данилова", "Савельева", "Тимофеева",
	"Фомина", "Чернова", "Абрамова", "Мартынова", "Ефимова", "Федотова", "Щербакова",
	"Назарова", "Калинина", "Исаева", "Чернышёва", "Быкова", "Маслова", "Родионова",
	"Коновалова", "Лазарева", "Воронина", "Климова", "Филатова", "Пономарёва", "Голубева",
	"Кудрявцева", "Прохорова", "Наумова", "Потапова", "Журавлёва", "Овчинникова", "Трофимова",
	"Леонова", "Соболева", "Ермакова", "Колесникова", "Гончарова", "Емельянова", "Никифорова",
	"Грачёва", "Котова", "Гришина", "Ефремова", "Архипова", "Громова", "Кириллова",
	"Малышева", "Панова", "Моисеева", "Румянцева", "Акимова", "Кондратьева", "Бирюкова",
	"Горбунова", "Анисимова", "Ерёмина", "Тихомирова", "Галкина", "Лукьянова", "Михеева",
	"Скворцова", "Юдина", "Белоусова", "Нестерова", "Симонова", "Прокофьева", "Харитонова",
	"Князева", "Цветкова", "Левина", "Митрофанова", "Воронова", "Аксёнова", "Софронова",
	"Мальцева", "Логинова", "Горшкова", "Савина", "Краснова", "Майорова", "Демидова",
	"Елисеева", "Рыбакова", "Сафонова", "Плотникова", "Дёмина", "Хохлова", "Жданова",
	"Щукина", "Юрьева", "Шубина", "Чистякова",
}

var firstNamesMale = []string{
	"Александр", "Алексей", "Анатолий", "Андрей", "Антон", "Аркадий", "Арсений",
	"Артём", "Богдан", "Борис", "Вадим", "Валентин", "Валерий", "Василий",
	"Виктор", "Виталий", "Владимир", "Владислав", "Всеволод", "Вячеслав", "Геннадий",
	"Георгий", "Глеб", "Григорий", "Даниил", "Денис", "Дмитрий", "Евгений",
	"Егор", "Захар", "Иван", "Игорь", "Илья", "Кирилл", "Константин",
	"Лев", "Леонид", "Макар", "Максим", "Марк", "Матвей", "Михаил",
	"Никита", "Николай", "Олег", "Павел", "Пётр", "Роман", "Руслан",
	"Святослав", "Семён", "Сергей", "Станислав", "Степан", "Тимофей", "Тимур",
	"Фёдор", "Филипп", "Юрий", "Ярослав",
}

var firstNamesFemale = []string{
	"Александра", "Алина", "Алиса", "Алла", "Анастасия", "Ангелина", "Анна",
	"Антонина", "Арина", "Валентина", "Валерия", "Варвара", "Вера", "Вероника",
	"Виктория", "Галина", "Дарья", "Диана", "Евгения", "Екатерина", "Елена",
	"Елизавета", "Жанна", "Зинаида", "Злата", "Инна", "Ирина", "Кира",
	"Клавдия", "Ксения", "Лариса", "Лидия", "Любовь", "Людмила", "Маргарита",
	"Марина", "Мария", "Милана", "Надежда", "Наталья", "Нина", "Оксана",
	"Олеся", "Ольга", "Полина", "Раиса", "Светлана", "София", "Таисия",
	"Тамара", "Татьяна", "Ульяна", "Юлия", "Яна",
}

var middleNamesMale = []string{
	"Александрович", "Алексеевич", "Анатольевич", "Андреевич", "Антонович", "Аркадьевич",
	"Артёмович", "Борисович", "Вадимович", "Валентинович", "Валерьевич", "Васильевич",
	"Викторович", "Витальевич", "Владимирович", "Владиславович", "Вячеславович", "Геннадьевич",
	"Георгиевич", "Глебович", "Григорьевич", "Даниилович", "Денисович", "Дмитриевич",
	"Евгеньевич", "Егорович", "Иванович", "Игоревич", "Ильич", "Кириллович",
	"Константинович", "Леонидович", "Львович", "Максимович", "Матвеевич", "Михайлович",
	"Никитич", "Николаевич", "Олегович", "Павлович", "Петрович", "Романович",
	"Русланович", "Семёнович", "Сергеевич", "Станиславович", "Степанович", "Тимофеевич",
	"Тимурович", "Фёдорович", "Филиппович", "Юрьевич", "Ярославович",
}

var middleNamesFemale = []string{
	"Александровна", "Алексеевна", "Анатольевна", "Андреевна", "Антоновна", "Аркадьевна",
	"Артёмовна", "Борисовна", "Вадимовна", "Валентиновна", "Валерьевна", "Васильевна",
	"Викторовна", "Витальевна", "Владимировна", "Владиславовна", "Вячеславовна", "Геннадьевна",
	"Георгиевна", "Глебовна", "Григорьевна", "Данииловна", "Денисовна", "Дмитриевна",
	"Евгеньевна", "Егоровна", "Ивановна", "Игоревна", "Ильинична", "Кирилловна",
	"Константиновна", "Леонидовна", "Львовна", "Максимовна", "Матвеевна", "Михайловна",
	"Никитична", "Николаевна", "Олеговна", "Павловна", "Петровна", "Романовна",
	"Руслановна", "Семёновна", "Сергеевна", "Станиславовна", "Степановна", "Тимофеевна",
	"Тимуровна", "Фёдоровна", "Филипповна", "Юрьевна", "Ярославовна",
}
