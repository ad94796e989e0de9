package catalog

import "github.com/dentalcare360/storefront/internal/domain/entity"

var defaultProducts = []entity.Product{
	{
		ID:           1,
		Name:         "Escova Dental Profissional",
		Description:  "Escova com cerdas macias e cabo ergonômico para uma limpeza eficiente e confortável.",
		Price:        29.90,
		Image:        "/images/product-placeholder.jpg",
		Category:     "Higiene",
		IsBestSeller: true,
	},
	{
		ID:            2,
		Name:          "Creme Dental Branqueador",
		Description:   "Creme dental com fórmula branqueadora que remove manchas e fortalece o esmalte.",
		Price:         24.90,
		DiscountPrice: 19.90,
		Image:         "/images/product-placeholder.jpg",
		Category:      "Higiene",
	},
	{
		ID:          3,
		Name:        "Kit Clareador Dental",
		Description: "Kit completo para clareamento dental caseiro com moldeiras e gel clareador.",
		Price:       149.90,
		Image:       "/images/product-placeholder.jpg",
		Category:    "Clareamento",
		IsNew:       true,
	},
	{
		ID:          4,
		Name:        "Fio Dental Premium",
		Description: "Fio dental de alta qualidade com tecnologia antideslizante e sabor de menta.",
		Price:       15.90,
		Image:       "/images/product-placeholder.jpg",
		Category:    "Higiene",
	},
	{
		ID:            5,
		Name:          "Enxaguante Bucal Antisséptico",
		Description:   "Enxaguante bucal que combate bactérias e proporciona hálito fresco por até 12 horas.",
		Price:         32.90,
		DiscountPrice: 27.90,
		Image:         "/images/product-placeholder.jpg",
		Category:      "Higiene",
		IsBestSeller:  true,
	},
	{
		ID:          6,
		Name:        "Escova Interdental",
		Description: "Conjunto de escovas interdentais para limpeza eficiente entre os dentes.",
		Price:       19.90,
		Image:       "/images/product-placeholder.jpg",
		Category:    "Higiene",
	},
	{
		ID:            7,
		Name:          "Irrigador Oral Portátil",
		Description:   "Irrigador oral portátil recarregável para limpeza profunda entre os dentes.",
		Price:         199.90,
		DiscountPrice: 179.90,
		Image:         "/images/product-placeholder.jpg",
		Category:      "Equipamentos",
		IsNew:         true,
	},
	{
		ID:          8,
		Name:        "Protetor Bucal para Bruxismo",
		Description: "Protetor bucal noturno para prevenção de desgaste dental causado pelo bruxismo.",
		Price:       89.90,
		Image:       "/images/product-placeholder.jpg",
		Category:    "Proteção",
	},
}
