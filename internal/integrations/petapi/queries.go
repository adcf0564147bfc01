package petapi

const servicesByCompanyQuery = `
query ServicesByCompany($input: ServicesByCompanyInput) {
  servicesByCompany(input: $input) {
    id
    name
    type
    category
    price
    pricingUnit
    duration
    startTime
    endTime
    daysAvailable
    active
    companyId
  }
}`

const createReservationMutation = `
mutation CreateReservation(
  $dogId: Int!
  $companyId: Int!
  $items: [ReservationItemCreateInput!]!
  $checkIn: DateTime
  $checkOut: DateTime
) {
  createReservation(
    dogId: $dogId
    companyId: $companyId
    items: $items
    checkIn: $checkIn
    checkOut: $checkOut
  ) {
    id
    dogId
    companyId
    status
    paymentStatus
    checkIn
    checkOut
    items {
      id
      name
      quantity
      unitPrice
      totalPrice
      kind
    }
    createdAt
    updatedAt
  }
}`

const reservationsByCompanyQuery = `
query ReservationsByCompany($companyId: Int, $filters: ReservationFilterInput) {
  reservationsByCompany(companyId: $companyId, filters: $filters) {
    id
    checkIn
    checkOut
    status
    paymentStatus
    dogId
    companyId
    dog {
      id
      name
      breed
      imageUrl
      owner {
        id
        name
        lastname
      }
    }
    items {
      id
      name
      kind
      quantity
      unitPrice
      totalPrice
      service {
        id
        name
        type
        category
      }
    }
    createdAt
    updatedAt
  }
}`

const companyDogsQuery = `
query CompanyDogs($companyId: Int) {
  companyDogs(companyId: $companyId) {
    id
    name
    breed
    imageUrl
    ownerId
    owner {
      name
      lastname
    }
  }
}`
